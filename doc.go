// Package sway is a frame-driven action and tween engine for [Ebitengine].
//
// An action is timed work bound to one [Actor]: move it, scale it, rotate
// it, fade it, wait, or call a function. Actions compose into a [Sequence]
// (one after another), a [Spawn] (in parallel) and a [Loop] (repeated), and a
// [Manager] updates every live action once per frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop driving a [Stage]:
//
//	stage := sway.NewStage(nil)
//	hero := sway.NewNode("hero")
//	stage.Root().AddChild(hero)
//
//	stage.RunAction(hero, sway.NewSequence(
//		sway.MoveBy(1, sway.Vec2{X: 100}).SetEase(sway.QuadOut),
//		sway.Delay(0.5),
//		sway.FadeOut(0.3),
//	))
//
//	cfg, _ := sway.LoadRunConfig()
//	sway.Run(stage, cfg)
//
// For full control, keep your own [ebiten.Game] and call [Manager.Update]
// with your frame delta, or [Stage.Update] with a [Clock] of your choosing.
//
// A [Task] is the timer counterpart of a tween: [Manager.AddTask] calls a
// function every interval without needing an actor.
//
// # Actors
//
// [Node] is the stock actor: a small parent/child tree holding position,
// scale, rotation and opacity. Any type implementing [Actor] can be
// animated; a disposed actor stops its actions on their next update.
//
// # Timing
//
// Durations are in seconds. Update(dt) adds dt to an action's elapsed time;
// a tween finishes exactly on its end value once elapsed reaches its
// duration, whatever the easing. Time a finished step does not use is
// carried into the next step of a sequence or loop within the same frame.
//
// # Easing
//
// Easing curves come from [gween]; see [EaseByName] for the names accepted
// by [ParseAction].
//
// # ECS
//
// Manager lifecycle events can be forwarded into a [Donburi] world with the
// sway/ecs package.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sway
