package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch starts watching the loaded config file and calls onChange with the
// file name whenever it is written or recreated. Values are not re-applied
// to running components. Watch is a no-op when no config file was read.
func Watch(onChange func(name string)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !IsReloadEvent(e) {
			return
		}
		onChange(e.Name)
	})
	viper.WatchConfig()
	return true
}

// IsReloadEvent reports whether a file event means the config content changed.
func IsReloadEvent(e fsnotify.Event) bool {
	return e.Op&(fsnotify.Write|fsnotify.Create) != 0
}
