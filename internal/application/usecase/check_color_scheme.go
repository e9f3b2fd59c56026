package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// DetectorCheck is the state of one color scheme detector.
type DetectorCheck struct {
	Name      string
	Priority  int
	Available bool
	// Answered is false when the detector is unavailable or could not tell.
	Answered    bool
	PrefersDark bool
	// Decides marks the detector whose answer the system preference uses.
	Decides bool
}

// CheckColorSchemeOutput reports every detector and the resulting resolution.
type CheckColorSchemeOutput struct {
	Detectors []DetectorCheck
	// Fallback is true when no detector answered and light is assumed.
	Fallback   bool
	Resolution ThemeResolution
}

// CheckColorSchemeUseCase queries every detector, not just the first that
// answers, to explain where the resolved theme comes from.
type CheckColorSchemeUseCase struct {
	source   port.ColorSchemeDetectorSource
	resolver *ResolveThemeUseCase
}

// NewCheckColorSchemeUseCase creates the diagnosis use case.
func NewCheckColorSchemeUseCase(source port.ColorSchemeDetectorSource, resolver *ResolveThemeUseCase) *CheckColorSchemeUseCase {
	return &CheckColorSchemeUseCase{source: source, resolver: resolver}
}

// Execute runs the checks.
func (uc *CheckColorSchemeUseCase) Execute(ctx context.Context) CheckColorSchemeOutput {
	log := logging.FromContext(ctx)

	var out CheckColorSchemeOutput
	decided := false
	for _, d := range uc.source.Detectors() {
		check := DetectorCheck{
			Name:      d.Name(),
			Priority:  d.Priority(),
			Available: d.Available(),
		}
		if check.Available {
			check.PrefersDark, check.Answered = d.Detect()
		}
		if check.Answered && !decided {
			check.Decides = true
			decided = true
		}

		log.Debug().
			Str("detector", check.Name).
			Bool("available", check.Available).
			Bool("answered", check.Answered).
			Bool("prefers_dark", check.PrefersDark).
			Msg("color scheme detector checked")

		out.Detectors = append(out.Detectors, check)
	}
	out.Fallback = !decided

	if uc.resolver != nil {
		out.Resolution = uc.resolver.Resolve(ctx)
	} else {
		out.Resolution = ThemeResolution{Theme: entity.ThemeLight, Source: SourceFallback}
	}
	return out
}
