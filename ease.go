package sway

import "github.com/tanema/gween/ease"

// EaseFunc maps linear progress t in [0, 1] to eased progress. Easing only
// shapes the curve; a tween always finishes when its raw progress reaches 1.
type EaseFunc func(t float64) float64

// Linear is the identity ease and the default for every tween.
func Linear(t float64) float64 { return t }

// FromGween adapts a gween easing function (begin 0, change 1, duration 1)
// to an EaseFunc.
func FromGween(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Easing table backed by gween. See https://easings.net for the curves.
var (
	EaseIn    = FromGween(ease.InCubic)
	EaseOut   = FromGween(ease.OutCubic)
	EaseInOut = FromGween(ease.InOutCubic)

	QuadIn    = FromGween(ease.InQuad)
	QuadOut   = FromGween(ease.OutQuad)
	QuadInOut = FromGween(ease.InOutQuad)

	CubicIn    = FromGween(ease.InCubic)
	CubicOut   = FromGween(ease.OutCubic)
	CubicInOut = FromGween(ease.InOutCubic)

	QuartIn    = FromGween(ease.InQuart)
	QuartOut   = FromGween(ease.OutQuart)
	QuartInOut = FromGween(ease.InOutQuart)

	QuintIn    = FromGween(ease.InQuint)
	QuintOut   = FromGween(ease.OutQuint)
	QuintInOut = FromGween(ease.InOutQuint)

	SineIn    = FromGween(ease.InSine)
	SineOut   = FromGween(ease.OutSine)
	SineInOut = FromGween(ease.InOutSine)

	ExpoIn    = FromGween(ease.InExpo)
	ExpoOut   = FromGween(ease.OutExpo)
	ExpoInOut = FromGween(ease.InOutExpo)

	CircIn    = FromGween(ease.InCirc)
	CircOut   = FromGween(ease.OutCirc)
	CircInOut = FromGween(ease.InOutCirc)

	ElasticIn    = FromGween(ease.InElastic)
	ElasticOut   = FromGween(ease.OutElastic)
	ElasticInOut = FromGween(ease.InOutElastic)

	BackIn    = FromGween(ease.InBack)
	BackOut   = FromGween(ease.OutBack)
	BackInOut = FromGween(ease.InOutBack)

	BounceIn    = FromGween(ease.InBounce)
	BounceOut   = FromGween(ease.OutBounce)
	BounceInOut = FromGween(ease.InOutBounce)
)

var easeNames = map[string]EaseFunc{
	"linear":       Linear,
	"easeIn":       EaseIn,
	"easeOut":      EaseOut,
	"easeInOut":    EaseInOut,
	"quadIn":       QuadIn,
	"quadOut":      QuadOut,
	"quadInOut":    QuadInOut,
	"cubicIn":      CubicIn,
	"cubicOut":     CubicOut,
	"cubicInOut":   CubicInOut,
	"quartIn":      QuartIn,
	"quartOut":     QuartOut,
	"quartInOut":   QuartInOut,
	"quintIn":      QuintIn,
	"quintOut":     QuintOut,
	"quintInOut":   QuintInOut,
	"sineIn":       SineIn,
	"sineOut":      SineOut,
	"sineInOut":    SineInOut,
	"expoIn":       ExpoIn,
	"expoOut":      ExpoOut,
	"expoInOut":    ExpoInOut,
	"circIn":       CircIn,
	"circOut":      CircOut,
	"circInOut":    CircInOut,
	"elasticIn":    ElasticIn,
	"elasticOut":   ElasticOut,
	"elasticInOut": ElasticInOut,
	"backIn":       BackIn,
	"backOut":      BackOut,
	"backInOut":    BackInOut,
	"bounceIn":     BounceIn,
	"bounceOut":    BounceOut,
	"bounceInOut":  BounceInOut,
}

// EaseByName looks up an ease by its table name ("linear", "quadIn",
// "bounceOut", ...). Used by ParseAction.
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easeNames[name]
	return fn, ok
}
