package sway

import (
	"encoding/json"
	"fmt"
)

// actionScript is one node of a JSON action description.
type actionScript struct {
	Type     string         `json:"type"`
	Name     string         `json:"name,omitempty"`
	Duration float64        `json:"duration,omitempty"`
	X        float64        `json:"x,omitempty"`
	Y        float64        `json:"y,omitempty"`
	Value    float64        `json:"value,omitempty"`
	Height   float64        `json:"height,omitempty"`
	Jumps    int            `json:"jumps,omitempty"`
	Times    *int           `json:"times,omitempty"`
	Ease     string         `json:"ease,omitempty"`
	Actions  []actionScript `json:"actions,omitempty"`
}

// ParseAction builds an action tree from JSON, for example:
//
//	{"type": "sequence", "actions": [
//		{"type": "moveBy", "duration": 1, "x": 100, "ease": "quadOut"},
//		{"type": "loop", "times": 3, "actions": [
//			{"type": "rotateBy", "duration": 0.5, "value": 3.14159}
//		]}
//	]}
//
// Tween types take duration plus x/y (move, jump, scale), value (rotate,
// fade) and height/jumps (jump). Composite types take actions; loop takes
// exactly one and times (default -1, forever).
func ParseAction(jsonData []byte) (Action, error) {
	var root actionScript
	if err := json.Unmarshal(jsonData, &root); err != nil {
		return nil, fmt.Errorf("sway: parse action script: %w", err)
	}
	a, err := buildAction(root, "$")
	if err != nil {
		return nil, fmt.Errorf("sway: parse action script: %w", err)
	}
	return a, nil
}

func buildAction(s actionScript, path string) (Action, error) {
	var a Action
	switch s.Type {
	case "sequence", "spawn":
		children, err := buildChildren(s, path)
		if err != nil {
			return nil, err
		}
		if s.Type == "sequence" {
			a = NewSequence(children...)
		} else {
			a = NewSpawn(children...)
		}
	case "loop":
		if len(s.Actions) != 1 {
			return nil, fmt.Errorf("%s: loop needs exactly one action, got %d", path, len(s.Actions))
		}
		children, err := buildChildren(s, path)
		if err != nil {
			return nil, err
		}
		times := -1
		if s.Times != nil {
			times = *s.Times
		}
		a = NewLoop(children[0], times)
	default:
		t, err := buildTween(s, path)
		if err != nil {
			return nil, err
		}
		a = t
	}
	a.SetName(s.Name)
	return a, nil
}

func buildChildren(s actionScript, path string) ([]Action, error) {
	children := make([]Action, len(s.Actions))
	for i, cs := range s.Actions {
		c, err := buildAction(cs, fmt.Sprintf("%s.actions[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return children, nil
}

func buildTween(s actionScript, path string) (*Tween, error) {
	var t *Tween
	switch s.Type {
	case "moveBy":
		t = MoveBy(s.Duration, Vec2{s.X, s.Y})
	case "moveTo":
		t = MoveTo(s.Duration, Vec2{s.X, s.Y})
	case "jumpBy":
		t = JumpBy(s.Duration, Vec2{s.X, s.Y}, s.Height, jumpCount(s.Jumps))
	case "jumpTo":
		t = JumpTo(s.Duration, Vec2{s.X, s.Y}, s.Height, jumpCount(s.Jumps))
	case "scaleBy":
		t = ScaleBy(s.Duration, s.X, s.Y)
	case "scaleTo":
		t = ScaleTo(s.Duration, s.X, s.Y)
	case "rotateBy":
		t = RotateBy(s.Duration, s.Value)
	case "rotateTo":
		t = RotateTo(s.Duration, s.Value)
	case "fadeBy":
		t = FadeBy(s.Duration, s.Value)
	case "fadeTo":
		t = FadeTo(s.Duration, s.Value)
	case "fadeIn":
		t = FadeIn(s.Duration)
	case "fadeOut":
		t = FadeOut(s.Duration)
	case "delay":
		t = Delay(s.Duration)
	case "":
		return nil, fmt.Errorf("%s: missing type", path)
	default:
		return nil, fmt.Errorf("%s: unknown type %q", path, s.Type)
	}
	if s.Ease != "" {
		fn, ok := EaseByName(s.Ease)
		if !ok {
			return nil, fmt.Errorf("%s: unknown ease %q", path, s.Ease)
		}
		t.SetEase(fn)
	}
	return t, nil
}

// jumpCount defaults an omitted jump count to a single hop.
func jumpCount(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
