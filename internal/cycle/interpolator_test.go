package cycle

import (
	"math/rand"
	"testing"

	"exhibit3d/internal/easing"
	"exhibit3d/internal/palette"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	red   = rl.NewColor(255, 0, 0, 255)
	green = rl.NewColor(0, 255, 0, 255)
	blue  = rl.NewColor(0, 0, 255, 255)
)

func rgbPalette() palette.Palette {
	return palette.Palette{
		palette.FromRL("red", red),
		palette.FromRL("green", green),
		palette.FromRL("blue", blue),
	}
}

func scenarioConfig() Config {
	return Config{
		Interval: 1.0,
		Duration: 0.5,
		Loop:     true,
		Curve:    easing.Linear.Curve(),
	}
}

// tickFor advances the interpolator in fixed 0.25s frames.
func tickFor(ip *Interpolator, seconds float32) {
	const frame = 0.25
	for elapsed := float32(0); elapsed < seconds; elapsed += frame {
		ip.Tick(frame)
	}
}

func TestScenarioSequentialCycle(t *testing.T) {
	ip := New(rgbPalette(), scenarioConfig())

	if got := ip.Value().RL(); got != red {
		t.Fatalf("initial color = %v, want red", got)
	}

	tickFor(ip, 1.0)
	if !ip.Transitioning() {
		t.Fatal("transition should begin after one interval")
	}
	if ip.NextIndex() != 1 {
		t.Errorf("transition target = %d, want 1", ip.NextIndex())
	}

	tickFor(ip, 0.5)
	if ip.Transitioning() {
		t.Fatal("transition should be finished after duration")
	}
	if ip.Index() != 1 || ip.Value().RL() != green {
		t.Errorf("after 1.5s: index %d color %v, want 1 green", ip.Index(), ip.Value().RL())
	}

	tickFor(ip, 1.5)
	if ip.Index() != 2 || ip.Value().RL() != blue {
		t.Errorf("after 3.0s: index %d color %v, want 2 blue", ip.Index(), ip.Value().RL())
	}

	tickFor(ip, 1.5)
	if ip.Index() != 0 || ip.Value().RL() != red {
		t.Errorf("after 4.5s: index %d color %v, want 0 red", ip.Index(), ip.Value().RL())
	}
}

func TestSequentialVisitsInOrder(t *testing.T) {
	p := rgbPalette()
	p = append(p, palette.FromRL("white", rl.White))
	ip := New(p, scenarioConfig())

	var visited []int
	ip.OnTransitionComplete = func(index int) {
		visited = append(visited, index)
	}
	tickFor(ip, 1.5*8)

	want := []int{1, 2, 3, 0, 1, 2, 3, 0}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestRandomVisitsAllAndNeverRepeats(t *testing.T) {
	p := rgbPalette()
	p = append(p, palette.FromRL("white", rl.White), palette.FromRL("black", rl.Black))
	cfg := scenarioConfig()
	cfg.Random = true
	ip := New(p, cfg, WithRand(rand.New(rand.NewSource(7))))

	seen := map[int]bool{0: true}
	ip.OnTransitionStart = func(from, to int) {
		if from == to {
			t.Errorf("random selection repeated index %d", from)
		}
		seen[to] = true
	}
	tickFor(ip, 1.5*200)

	for i := range p {
		if !seen[i] {
			t.Errorf("index %d never visited", i)
		}
	}
}

func TestRandomTwoEntriesAlternates(t *testing.T) {
	p := rgbPalette()[:2]
	cfg := scenarioConfig()
	cfg.Random = true
	ip := New(p, cfg, WithRand(rand.New(rand.NewSource(1))))

	for i := 0; i < 6; i++ {
		before := ip.Index()
		tickFor(ip, 1.5)
		if ip.Index() == before {
			t.Fatalf("step %d: index stayed at %d", i, before)
		}
	}
}

func TestProgressMonotonicAndClamped(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Interval = 0
	cfg.Duration = 1
	ip := New(rgbPalette(), cfg)

	if !ip.ForceAdvance() {
		t.Fatal("ForceAdvance should start a transition")
	}

	last := float32(0)
	for ip.Transitioning() {
		ip.AdvanceTransition(0.07)
		p := ip.Progress()
		if p < last {
			t.Fatalf("progress went backwards: %v -> %v", last, p)
		}
		if p > 1 {
			t.Fatalf("progress %v exceeds 1", p)
		}
		if ip.Transitioning() && ip.Elapsed() > ip.Config().Duration {
			t.Fatalf("elapsed %v exceeds duration", ip.Elapsed())
		}
		last = p
	}
	if last != 1 {
		t.Errorf("final progress = %v, want exactly 1", last)
	}
}

func TestOversizedFrameCompletesTransition(t *testing.T) {
	ip := New(rgbPalette(), scenarioConfig())
	ip.ForceAdvance()
	ip.Tick(10)

	if ip.Transitioning() {
		t.Fatal("a frame longer than the duration should complete the transition")
	}
	if ip.Progress() != 1 {
		t.Errorf("progress = %v, want 1", ip.Progress())
	}
	if ip.Value().RL() != green {
		t.Errorf("color = %v, want green", ip.Value().RL())
	}
}

func TestBoundaryFidelity(t *testing.T) {
	for _, preset := range easing.Presets() {
		t.Run(preset.String(), func(t *testing.T) {
			cfg := scenarioConfig()
			cfg.Curve = preset.Curve()
			ip := New(rgbPalette(), cfg)
			ip.ForceAdvance()

			ip.AdvanceTransition(0)
			if got := ip.Value().RL(); got != red {
				t.Errorf("at progress 0 color = %v, want red", got)
			}

			ip.AdvanceTransition(cfg.Duration)
			if got := ip.Value().RL(); got != green {
				t.Errorf("at progress 1 color = %v, want green", got)
			}
		})
	}
}

func TestMidpointFollowsCurve(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Duration = 1
	ip := New(rgbPalette(), cfg)
	ip.ForceAdvance()
	ip.AdvanceTransition(0.5)

	got := ip.Value().RL()
	if got.R != 128 || got.G != 128 {
		t.Errorf("linear midpoint = %v, want (128,128,0)", got)
	}

	cfg.Curve = easing.EaseIn.Curve()
	ip = New(rgbPalette(), cfg)
	ip.ForceAdvance()
	ip.AdvanceTransition(0.5)

	got = ip.Value().RL()
	if got.G != 64 {
		t.Errorf("ease-in midpoint green = %d, want 64", got.G)
	}
}

func TestForceAdvanceDuringTransitionIsNoop(t *testing.T) {
	ip := New(rgbPalette(), scenarioConfig())
	if !ip.ForceAdvance() {
		t.Fatal("first ForceAdvance should succeed")
	}
	ip.AdvanceTransition(0.25)

	before := *ip
	if ip.ForceAdvance() {
		t.Error("ForceAdvance during a transition should be rejected")
	}
	if ip.NextIndex() != before.next || ip.Elapsed() != before.elapsed || ip.Value() != before.value {
		t.Error("rejected ForceAdvance changed state")
	}
}

func TestForceAdvanceResetsWaitTimer(t *testing.T) {
	ip := New(rgbPalette(), scenarioConfig())
	ip.Tick(0.75)
	if ip.Waited() != 0.75 {
		t.Fatalf("waited = %v, want 0.75", ip.Waited())
	}
	ip.ForceAdvance()
	if ip.Waited() != 0 {
		t.Errorf("waited after ForceAdvance = %v, want 0", ip.Waited())
	}
}

func TestNoLoopStopsAtFinalIndex(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Loop = false
	ip := New(rgbPalette(), cfg)

	tickFor(ip, 3.0)
	if ip.Index() != 2 {
		t.Fatalf("index = %d, want 2", ip.Index())
	}

	starts := 0
	ip.OnTransitionStart = func(from, to int) { starts++ }
	tickFor(ip, 60)

	if starts != 0 || ip.Transitioning() || ip.Index() != 2 {
		t.Errorf("no-loop cycler kept advancing: starts=%d index=%d", starts, ip.Index())
	}
	if ip.ForceAdvance() {
		t.Error("ForceAdvance at the end of a non-looping palette should be rejected")
	}
}

func TestShortPalettesDisableCycling(t *testing.T) {
	tests := []struct {
		name string
		p    palette.Palette
	}{
		{"empty", nil},
		{"single", rgbPalette()[:1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scenarioConfig()
			cfg.Random = true
			ip := New(tt.p, cfg)

			tickFor(ip, 10)
			if ip.Transitioning() || ip.Waited() != 0 {
				t.Error("tick should be a no-op")
			}
			if ip.ForceAdvance() {
				t.Error("ForceAdvance should be rejected")
			}
			if ip.Index() != 0 {
				t.Errorf("index = %d, want 0", ip.Index())
			}
		})
	}
}

func TestRandomSingleEntryReturnsCurrent(t *testing.T) {
	ip := New(rgbPalette()[:1], Config{Random: true})
	if got := ip.nextIndex(); got != 0 {
		t.Errorf("nextIndex = %d, want 0", got)
	}
}

func TestDurationClamped(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Duration = 0
	cfg.Interval = -3
	ip := New(rgbPalette(), cfg)

	if ip.Config().Duration != MinTransitionDuration {
		t.Errorf("duration = %v, want %v", ip.Config().Duration, MinTransitionDuration)
	}
	if ip.Config().Interval != 0 {
		t.Errorf("interval = %v, want 0", ip.Config().Interval)
	}

	ip.SetTransitionDuration(-1)
	if ip.Config().Duration != MinTransitionDuration {
		t.Errorf("SetTransitionDuration(-1) left %v", ip.Config().Duration)
	}

	// Even a zero written behind the setters must not divide by zero
	ip.cfg.Duration = 0
	ip.ForceAdvance()
	ip.AdvanceTransition(0.001)
	if p := ip.Progress(); p <= 0 || p >= 1 {
		t.Errorf("progress = %v, want a value inside (0, 1)", p)
	}
	ip.AdvanceTransition(1)
	if ip.Transitioning() || ip.Index() != 1 {
		t.Errorf("zero-duration transition did not complete: index %d", ip.Index())
	}
}

func TestFadeEmissionToggle(t *testing.T) {
	glow, _, _ := palette.ParseColor("#ffffff")
	p := rgbPalette()[:2]
	p[1].Emission = glow
	p[1].HasEmission = true

	cfg := scenarioConfig()
	cfg.Duration = 1
	cfg.FadeEmission = true
	ip := New(p, cfg)
	ip.ForceAdvance()
	ip.AdvanceTransition(0.5)
	if e := ip.Value().EmissionRL(); e.R != 128 {
		t.Errorf("faded emission = %v, want half white", e)
	}

	cfg.FadeEmission = false
	ip = New(p, cfg)
	ip.ForceAdvance()
	ip.AdvanceTransition(0.5)
	if ip.Value().HasEmission {
		t.Error("emission should stay untouched when fading is disabled")
	}
}

func TestRuntimeReconfiguration(t *testing.T) {
	ip := New(rgbPalette(), scenarioConfig())
	ip.SetInterval(0.25)
	ip.SetLoop(false)
	ip.SetRandom(true)
	ip.SetFadeEmission(false)
	ip.SetCurve(nil)

	cfg := ip.Config()
	if cfg.Interval != 0.25 || cfg.Loop || !cfg.Random || cfg.FadeEmission || cfg.Curve == nil {
		t.Errorf("unexpected config after setters: %+v", cfg)
	}

	ip.Tick(0.25)
	if !ip.Transitioning() {
		t.Error("shortened interval should start a transition")
	}
}

func TestPaletteIsCopied(t *testing.T) {
	p := rgbPalette()
	ip := New(p, scenarioConfig())
	p[1] = palette.FromRL("white", rl.White)

	ip.ForceAdvance()
	ip.AdvanceTransition(1)
	if ip.Value().RL() != green {
		t.Errorf("interpolator observed caller mutation: %v", ip.Value().RL())
	}
}
