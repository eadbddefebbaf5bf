package scene

// EffectKind identifies the family of a visual effect.
type EffectKind string

const (
	EffectParticle EffectKind = "particle"
	EffectLight    EffectKind = "light"
	EffectWeather  EffectKind = "weather"
	EffectCustom   EffectKind = "custom"
)

// EffectParams is the tagged parameter variant for one effect kind. The
// renderer adapter owns the interpretation; this core only defines the shape
// per kind instead of a free-form bag.
type EffectParams interface {
	Kind() EffectKind
}

// ParticleParams configures a particle emitter effect.
type ParticleParams struct {
	Rate  float64 // particles per second
	Size  float64
	Color string // hex
}

func (ParticleParams) Kind() EffectKind { return EffectParticle }

// LightParams configures a placed light effect.
type LightParams struct {
	Color     string // hex
	Intensity float64
	Radius    float64
}

func (LightParams) Kind() EffectKind { return EffectLight }

// WeatherParams configures a weather overlay effect.
type WeatherParams struct {
	Condition string // e.g. "rain", "snow", "fog"
	Intensity float64
}

func (WeatherParams) Kind() EffectKind { return EffectWeather }

// CustomParams carries renderer-defined key/value parameters.
type CustomParams map[string]string

func (CustomParams) Kind() EffectKind { return EffectCustom }

// Effect is a timed visual effect on the scene timeline. This core only
// computes its activation window and progress fraction; rendering of each
// kind is the adapter's concern.
type Effect struct {
	ID        string
	Name      string
	Params    EffectParams
	StartTime float64
	Duration  float64 // > 0
}

// Kind returns the effect's family, derived from its parameter variant.
func (e *Effect) Kind() EffectKind {
	if e.Params == nil {
		return EffectCustom
	}
	return e.Params.Kind()
}

// ActiveAt reports whether the effect's half-open window covers scene time t.
func (e *Effect) ActiveAt(t float64) bool {
	return t >= e.StartTime && t < e.StartTime+e.Duration
}

// Progress returns the effect-local progress at scene time t, clamped to [0,1].
func (e *Effect) Progress(t float64) float64 {
	p := (t - e.StartTime) / e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
