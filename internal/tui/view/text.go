package view

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/sprout/internal/growth"
)

// Screen texts.
const (
	SelectPrompt = "Selecione uma planta e área para plantar!"
	PlantLabel   = "Escolha a planta:"
	AreaLabel    = "Área plantada (m²):"
	PlantButton  = "🌾 Plantar"
	InvalidInput = "❗ Por favor, escolha uma planta e informe uma área válida."
)

var captions = [...]string{
	growth.PhaseSprout:     "🌱 Fase 1: Broto nascendo",
	growth.PhaseGrowing:    "🌿 Fase 2: Crescimento acelerado",
	growth.PhaseAlmostRipe: "🌳 Fase 3: Quase pronto para colher",
	growth.PhaseHarvested:  "🎉 Colhido!",
}

// Caption returns the text describing a phase.
func Caption(phase growth.Phase) string {
	if phase < 0 || int(phase) >= len(captions) {
		return ""
	}
	return captions[phase]
}

// AppTitle returns the header title for the given virtual day length.
func AppTitle(virtualDay time.Duration) string {
	return "🌱 Simulador de Plantio - " + DescribeVirtualDay(virtualDay) + " = 1 Dia"
}

// DayCounter returns the always visible elapsed day counter.
func DayCounter(days int) string {
	return fmt.Sprintf("⏳ Dias no jogo: %d", days)
}

// DaysLabel returns the "Dias: E / T" label under the progress bar.
func DaysLabel(elapsed, total int) string {
	return fmt.Sprintf("Dias: %d / %d", elapsed, total)
}

// GrowthTitle returns the title of the growing screen.
func GrowthTitle(plant string) string {
	return "🌿 Crescimento de " + plant
}

// HarvestMessage returns the congratulation shown once a plant is harvested.
func HarvestMessage(plant string) string {
	return "🎉 " + plant + " colhida! Parabéns!"
}

// DescribeVirtualDay names a virtual day length in the largest whole unit,
// e.g. "1 Minuto" or "30 Segundos".
func DescribeVirtualDay(d time.Duration) string {
	switch {
	case d <= 0:
		return "0 Segundos"
	case d%time.Hour == 0:
		return plural(int64(d/time.Hour), "Hora", "Horas")
	case d%time.Minute == 0:
		return plural(int64(d/time.Minute), "Minuto", "Minutos")
	case d%time.Second == 0:
		return plural(int64(d/time.Second), "Segundo", "Segundos")
	default:
		return plural(d.Milliseconds(), "Milissegundo", "Milissegundos")
	}
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// NextPhaseLabel describes how long until the next phase starts.
func NextPhaseLabel(next growth.Phase, remaining time.Duration) string {
	if next == growth.PhaseHarvested {
		return "colheita em " + FormatDuration(remaining)
	}
	return fmt.Sprintf("fase %d em %s", int(next)+1, FormatDuration(remaining))
}
