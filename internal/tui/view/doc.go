// Package view provides the pure renderers for the sprout TUI.
//
// Every function here turns plain values into strings. Nothing reads the
// clock or talks to the growth controller, so the screens can be tested
// without a terminal.
//
// # Components
//
//   - [RenderPlant] and [PlantRows]: the four additive illustration stages
//   - [RenderProgressBar]: the "[███░░]" bar, clamped to [0, 1]
//   - [RenderCard] and [RenderModal]: prompt, harvest and error boxes
//   - [RenderGrowth] and [RenderHarvest]: the full growing and harvested screens
//   - [RenderHelpBar]: key hints plus the next phase countdown
//
// # Texts
//
// Screen texts are Portuguese, matching the plant names in the catalog.
// [Caption] maps a phase to its caption and [AppTitle] names the virtual day
// length, e.g. "🌱 Simulador de Plantio - 1 Minuto = 1 Dia".
package view
