// Package glint is a small animation engine for scrolling portfolio pages
// rendered with [Ebitengine].
//
// Glint provides easing curves, a frame-clock driven tween runner, a
// connected particle field with pointer repulsion, one-shot scroll-triggered
// reveals, and the scroll, pointer and typing effects that decorate a page.
//
// # Quick start
//
// Describe the page in YAML, build it and hand it to [Run], which creates a
// window and game loop for you:
//
//	cfg, err := glint.LoadPageConfig("page.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	page := glint.NewPage(cfg, glint.PageOptions{
//		Preferences: glint.OpenPreferences("my-portfolio"),
//	})
//	glint.Run(page, glint.RunConfig{Title: "Portfolio", ShowFPS: true})
//
// For full control, implement [ebiten.Game] yourself and call [Page.Update]
// and [Page.Draw] with an [EbitenSurface]. Any [Surface] works; the
// [TerminalSurface] draws into a tcell screen.
//
// # Time
//
// Everything animated is driven by a [FrameClock]. A [FrameLoop] is the
// clock the page owns; tests advance one by hand for deterministic frames.
// Callbacks registered during a frame run on the next one, and a callback
// that panics is dropped without disturbing the others.
//
// # Tweens
//
// [Runner.Run] interpolates named numeric fields of a [Target] from one set
// of [Values] to another. Per-field interpolation is delegated to [gween]
// using the curves in this package. [Runner.RunGroup] staggers one tween per
// target. With reduced motion the end values are applied immediately.
//
// # Reveals
//
// A [Dispatcher] watches elements through an [Observer] and fires each
// element's [Reveal] exactly once, the first time it scrolls into view.
// Reveal events can be forwarded to a [Donburi] world with the adapter in
// glint/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package glint
