package animation

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/dispatch"
	"github.com/appengine-ltd/weatherdash/internal/log"
	"github.com/appengine-ltd/weatherdash/internal/tween"
	"github.com/appengine-ltd/weatherdash/internal/weather"
)

const (
	frameInterval      = time.Second / FrameRate
	gradientDuration   = 1500 * time.Millisecond
	gradientStep       = 16 * time.Millisecond
	flashStep          = 30 * time.Millisecond
	flashStartOpacity  = 0.4
	flashDecay         = 0.08
	lightningChance    = 0.02
	cloudWrapMargin    = 200.0
	cloudRespawnX      = -150.0
	particleWrapMargin = 50.0
	particleEdge       = 30.0
	fogWrapMargin      = 100.0
	fogWidthFactor     = 1.3
	fogStartFactor     = 0.3
)

// Scene is a copy of everything the renderer needs for one frame.
type Scene struct {
	Width, Height float64
	Condition     weather.Condition
	Night         bool
	Top, Bottom   color.RGBA
	Clouds        []Cloud
	Particles     []Particle
	Flashes       []Flash
}

type flashEntry struct {
	flash Flash
	timer *dispatch.Timer
}

// Engine owns the background population and advances it on a dispatch loop.
// It is not safe for concurrent use; every call happens on the loop's thread.
type Engine struct {
	loop  *dispatch.Loop
	log   *zap.SugaredLogger
	rng   *rand.Rand
	seed  uint64
	clock func() time.Time

	width, height float64
	attached      bool
	state         *State

	clouds    []Cloud
	particles []Particle
	flashes   []*flashEntry
	moteGoal  int

	top, bottom   color.RGBA
	frameTimer    *dispatch.Timer
	gradientTimer *dispatch.Timer
}

type Option func(*Engine)

func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock sets the clock used to seed the RNG when no seed is given.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

func NewEngine(loop *dispatch.Loop, opts ...Option) *Engine {
	e := &Engine{loop: loop, clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = log.GetSugaredLogger()
	}
	if e.seed == 0 {
		e.seed = uint64(e.clock().UnixNano())
	}
	e.rng = seededRNG(e.seed)
	e.top, e.bottom = Gradient(weather.ConditionUnknown, false)
	return e
}

// Attach starts the frame timer for a w×h viewport and spawns the current
// state's population. Attaching twice only resizes.
func (e *Engine) Attach(w, h float64) {
	if e.attached {
		e.Resize(w, h)
		return
	}
	e.attached = true
	e.width, e.height = sanitizeExtent(w), sanitizeExtent(h)
	e.frameTimer = e.loop.Every("animation.frame", frameInterval, func() {
		e.Tick(frameInterval)
	})
	if e.state != nil {
		e.respawn()
		e.transitionGradient()
	}
}

// Detach stops every timer the engine owns and clears all entities. The last
// state is kept so a later Attach restores the scene.
func (e *Engine) Detach() {
	e.attached = false
	e.frameTimer.Stop()
	e.frameTimer = nil
	e.gradientTimer.Stop()
	e.gradientTimer = nil
	e.clearEntities()
}

func (e *Engine) Resize(w, h float64) {
	e.width, e.height = sanitizeExtent(w), sanitizeExtent(h)
	if e.attached && e.state != nil && e.LiveEntities() == 0 {
		e.respawn()
	}
}

// SetState applies a new animation state. The population is rebuilt when the
// condition or the night flag changes. An intensity-only change resizes the
// precipitation without touching clouds. The background always eases toward
// the state's colours.
func (e *Engine) SetState(s State) {
	prev := e.state
	next := s
	e.state = &next

	switch {
	case prev == nil || prev.Condition != s.Condition || prev.IsNight != s.IsNight:
		e.respawn()
	case prev.ParticleCount != s.ParticleCount || prev.Intensity != s.Intensity:
		e.rebalancePrecipitation()
	}
	e.transitionGradient()
}

func (e *Engine) State() (State, bool) {
	if e.state == nil {
		return State{}, false
	}
	return *e.state, true
}

func (e *Engine) Tick(dt time.Duration) {
	if e.state == nil || !e.hasArea() {
		return
	}
	frames := float64(dt) / float64(frameInterval)
	seconds := dt.Seconds()
	w, h := e.width, e.height

	for i := range e.clouds {
		c := &e.clouds[i]
		c.X += c.Speed * seconds
		if c.X > w+cloudWrapMargin {
			c.X = cloudRespawnX
			c.Y = e.rng.Float64() * h * 0.5
		}
		if !finite(c.X, c.Y) {
			e.log.Warnw("cloud left the finite plane, respawning", "x", c.X, "y", c.Y)
			*c = e.newCloud()
		}
	}

	kept := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX * frames
		p.Y += p.VY * frames

		switch p.Kind {
		case KindSnow:
			p.VX = math.Sin(p.Y*0.04) * 1.8
			p.Rotation += p.RotationSpeed * frames
		case KindMote:
			p.Life--
			if p.Life <= 0 {
				continue
			}
		}

		if p.Kind == KindFog {
			if p.X > w+fogWrapMargin {
				p.X = -w * fogStartFactor
				p.Y = e.rng.Float64() * h
			}
		} else {
			if p.Y > h+particleEdge {
				p.Y = -particleEdge
				p.X = e.rng.Float64() * w
			}
			if p.X < -particleWrapMargin {
				p.X = w + particleWrapMargin
			} else if p.X > w+particleWrapMargin {
				p.X = -particleWrapMargin
			}
		}

		if !finite(p.X, p.Y, p.VX, p.VY) {
			e.log.Warnw("particle left the finite plane, respawning", "kind", p.Kind.String())
			p = e.newParticle(p.Kind)
		}
		kept = append(kept, p)
	}
	clear(e.particles[len(kept):])
	e.particles = kept

	// Freed mote slots refill one per frame.
	if e.countKind(KindMote) < e.moteGoal && len(e.particles) < MaxParticles {
		e.particles = append(e.particles, e.newParticle(KindMote))
	}

	if e.state.Condition == weather.ConditionStorm && e.rng.Float64() < lightningChance {
		e.flashLightning()
	}
}

func (e *Engine) Snapshot() Scene {
	sc := Scene{
		Width:     e.width,
		Height:    e.height,
		Top:       e.top,
		Bottom:    e.bottom,
		Clouds:    append([]Cloud(nil), e.clouds...),
		Particles: append([]Particle(nil), e.particles...),
	}
	if e.state != nil {
		sc.Condition = e.state.Condition
		sc.Night = e.state.IsNight
	}
	for _, f := range e.flashes {
		sc.Flashes = append(sc.Flashes, f.flash)
	}
	return sc
}

// LiveTimers counts the engine's timers that are still scheduled.
func (e *Engine) LiveTimers() int {
	n := 0
	if e.frameTimer.Active() {
		n++
	}
	if e.gradientTimer.Active() {
		n++
	}
	for _, f := range e.flashes {
		if f.timer.Active() {
			n++
		}
	}
	return n
}

// LiveEntities counts clouds, particles and lightning flashes.
func (e *Engine) LiveEntities() int {
	return len(e.clouds) + len(e.particles) + len(e.flashes)
}

func (e *Engine) hasArea() bool {
	return e.width > 0 && e.height > 0
}

func (e *Engine) clearEntities() {
	for _, f := range e.flashes {
		f.timer.Stop()
	}
	e.flashes = nil
	e.clouds = e.clouds[:0]
	e.particles = e.particles[:0]
	e.moteGoal = 0
}

func (e *Engine) respawn() {
	e.clearEntities()
	if !e.attached || e.state == nil || !e.hasArea() {
		return
	}
	s := *e.state
	switch s.Condition {
	case weather.ConditionSunny:
		e.spawnMotes(sunMoteCount)
	case weather.ConditionPartlyCloudy:
		e.spawnClouds(3)
		e.spawnMotes(sunMoteCount)
	case weather.ConditionCloudy:
		e.spawnClouds(5)
	case weather.ConditionRainy:
		e.spawnClouds(4)
		e.spawnPrecipitation(KindRain, precipitationTarget(s))
	case weather.ConditionStorm:
		e.spawnClouds(6)
		e.spawnPrecipitation(KindRain, precipitationTarget(s))
		if e.rng.Float64() < lightningChance {
			e.flashLightning()
		}
	case weather.ConditionSnowy:
		e.spawnClouds(4)
		e.spawnPrecipitation(KindSnow, precipitationTarget(s))
	case weather.ConditionFoggy:
		e.spawnFog(fogBandCount)
	}
	e.log.Debugw("animation respawned",
		"condition", s.Condition,
		"night", s.IsNight,
		"clouds", len(e.clouds),
		"particles", len(e.particles))
}

func precipitationTarget(s State) int {
	return min(MaxParticles, int(float64(s.ParticleCount)*s.Intensity))
}

func precipitationKind(c weather.Condition) (ParticleKind, bool) {
	switch c {
	case weather.ConditionRainy, weather.ConditionStorm:
		return KindRain, true
	case weather.ConditionSnowy:
		return KindSnow, true
	default:
		return 0, false
	}
}

func (e *Engine) rebalancePrecipitation() {
	kind, ok := precipitationKind(e.state.Condition)
	if !ok || !e.attached || !e.hasArea() {
		return
	}
	target := precipitationTarget(*e.state)
	have := e.countKind(kind)
	if have < target {
		e.spawnPrecipitation(kind, target-have)
		return
	}
	drop := have - target
	kept := e.particles[:0]
	for i := len(e.particles) - 1; i >= 0; i-- {
		if drop > 0 && e.particles[i].Kind == kind {
			drop--
			e.particles[i].Kind = -1
		}
	}
	for _, p := range e.particles {
		if p.Kind >= 0 {
			kept = append(kept, p)
		}
	}
	clear(e.particles[len(kept):])
	e.particles = kept
}

func (e *Engine) countKind(k ParticleKind) int {
	n := 0
	for _, p := range e.particles {
		if p.Kind == k {
			n++
		}
	}
	return n
}

func (e *Engine) spawnClouds(n int) {
	if !e.hasArea() {
		return
	}
	for i := 0; i < n && len(e.clouds) < MaxClouds; i++ {
		e.clouds = append(e.clouds, e.newCloud())
	}
}

func (e *Engine) spawnMotes(n int) {
	if !e.hasArea() {
		return
	}
	e.moteGoal = n
	for i := 0; i < n && len(e.particles) < MaxParticles; i++ {
		e.particles = append(e.particles, e.newParticle(KindMote))
	}
}

func (e *Engine) spawnPrecipitation(kind ParticleKind, n int) {
	if !e.hasArea() {
		return
	}
	n = min(n, MaxParticles)
	for i := 0; i < n && len(e.particles) < MaxParticles; i++ {
		e.particles = append(e.particles, e.newParticle(kind))
	}
}

func (e *Engine) spawnFog(n int) {
	if !e.hasArea() {
		return
	}
	for i := 0; i < n && len(e.particles) < MaxParticles; i++ {
		e.particles = append(e.particles, e.newParticle(KindFog))
	}
}

func (e *Engine) newCloud() Cloud {
	speed := 1.0
	if e.state != nil && e.state.CloudSpeed > 0 {
		speed = e.state.CloudSpeed
	}
	return Cloud{
		X:       e.rng.Float64() * e.width,
		Y:       e.rng.Float64() * e.height * 0.5,
		Speed:   between(e.rng, 8, 33) * speed,
		Scale:   between(e.rng, 0.5, 1.7),
		Opacity: between(e.rng, 0.35, 0.85),
		Variant: CloudVariant(e.rng.IntN(3)),
		Depth:   e.rng.IntN(3),
	}
}

func (e *Engine) newParticle(kind ParticleKind) Particle {
	intensity, wind := 0.5, defaultWindAngle
	if e.state != nil {
		intensity, wind = e.state.Intensity, e.state.WindAngle
	}
	w, h := e.width, e.height
	p := Particle{Kind: kind, Opacity: 1}
	switch kind {
	case KindRain:
		p.X = e.rng.Float64() * w
		p.Y = e.rng.Float64() * h
		p.Size = float64(14 + e.rng.IntN(10))
		p.VY = 12 + e.rng.Float64()*10*intensity
		p.VX = wind / 8
		p.Opacity = between(e.rng, 0.7, 1.0)
	case KindSnow:
		p.X = e.rng.Float64() * w
		p.Y = e.rng.Float64() * h
		p.Size = between(e.rng, 4, 12)
		p.VY = 0.8 + e.rng.Float64()*2*intensity
		p.VX = math.Sin(e.rng.Float64()*2*math.Pi) * 1.5
		p.Rotation = e.rng.Float64() * 360
		p.RotationSpeed = between(e.rng, -3, 3)
		p.Opacity = 0.8
	case KindMote:
		p.X = e.rng.Float64() * w
		p.Y = e.rng.Float64() * h
		p.Size = between(e.rng, 2, 6)
		p.VY = between(e.rng, -0.4, -0.1)
		p.VX = between(e.rng, -0.15, 0.15)
		p.Rotation = e.rng.Float64() * 360
		p.Life = 120 + e.rng.IntN(80)
	case KindFog:
		p.X = -w * fogStartFactor
		p.Y = e.rng.Float64() * h
		p.Width = w * fogWidthFactor
		p.Size = between(e.rng, 80, 200)
		p.VX = between(e.rng, 5, 17)
		p.Opacity = between(e.rng, 0.4, 0.7)
	}
	return p
}

func (e *Engine) flashLightning() {
	if !e.attached {
		return
	}
	entry := &flashEntry{flash: Flash{Opacity: flashStartOpacity}}
	entry.timer = e.loop.Every("animation.lightning", flashStep, func() {
		entry.flash.Opacity -= flashDecay
		if entry.flash.Opacity <= 1e-9 {
			entry.flash.Opacity = 0
			entry.timer.Stop()
			e.removeFlash(entry)
		}
	})
	e.flashes = append(e.flashes, entry)
	e.log.Debugw("lightning flash", "live_flashes", len(e.flashes))
}

func (e *Engine) removeFlash(entry *flashEntry) {
	for i, f := range e.flashes {
		if f == entry {
			e.flashes = append(e.flashes[:i], e.flashes[i+1:]...)
			return
		}
	}
}

// transitionGradient eases both background stops toward the current state's
// colours, replacing any transition already running.
func (e *Engine) transitionGradient() {
	top, bottom := Gradient(e.state.Condition, e.state.IsNight)
	e.gradientTimer.Stop()
	e.gradientTimer = nil
	if !e.attached {
		e.top, e.bottom = top, bottom
		return
	}

	fromTop, fromBottom := e.top, e.bottom
	tw := tween.New(0, 1, gradientDuration, tween.EaseInOutQuad)
	var timer *dispatch.Timer
	timer = e.loop.Every("animation.gradient", gradientStep, func() {
		t := tw.Step(gradientStep)
		e.top = tween.LerpColor(fromTop, top, t)
		e.bottom = tween.LerpColor(fromBottom, bottom, t)
		if tw.Done() {
			timer.Stop()
		}
	})
	e.gradientTimer = timer
}

func sanitizeExtent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
