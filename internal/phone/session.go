package phone

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"phone3d/internal/config"
	"phone3d/internal/scene"
)

// Overlay is the 2D screen layer composited over the phone's display face.
type Overlay interface {
	Place(p Placement)
	SetContent(c Content)
}

// Sound names a UI sound effect.
type Sound int

const (
	SoundClick Sound = iota
	SoundVolume
	SoundBoot
	SoundPowerOff
)

// Sounder plays UI sounds. gain is in 0..1.
type Sounder interface {
	Play(s Sound, gain float64)
}

// Session owns the whole interactive phone: scene, camera, input, power and
// volume. All methods must be called from one goroutine (the host loop).
type Session struct {
	ID     string
	Scene  *scene.Scene
	Camera *scene.Camera
	Rig    *Rig

	cfg       *config.Config
	clock     Clock
	sched     *Scheduler
	frame     *FrameLimiter
	router    *Router
	momentum  Momentum
	projector Projector
	power     *PowerMachine
	volume    Volume
	home      *HomeScreen
	raycaster *scene.Raycaster
	bus       *EventBus
	log       *slog.Logger

	overlay Overlay
	sound   Sounder

	content   Content
	placement Placement
	width     int
	height    int
	zoom      float64

	feedback  [3]*Timer
	indicator *Timer
	clockTick *Timer
	lastPower PowerState
}

// NewSession builds the scene from cfg. overlay and sound may be nil.
func NewSession(cfg *config.Config, clock Clock, overlay Overlay, sound Sounder) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()
	s := &Session{
		ID:    uuid.NewString(),
		Scene: scene.NewScene(),
		cfg:   cfg,
		clock: clock,
		sched: NewScheduler(now),
		frame: NewFrameLimiter(cfg.Window.FPS),
		momentum: Momentum{
			Damping:    cfg.Momentum.Damping,
			ClampPitch: cfg.Momentum.ClampPitch,
		},
		volume:    NewVolume(cfg.Phone.InitialVolume, cfg.Phone.MaxVolume),
		raycaster: scene.NewRaycaster(),
		bus:       NewEventBus(),
		overlay:   overlay,
		sound:     sound,
		zoom:      cfg.Overlay.BaselineZoom,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
	}
	s.log = slog.With("session", s.ID)

	s.Rig = BuildRig(Dimensions{
		Width:        cfg.Phone.Width,
		Height:       cfg.Phone.Height,
		Depth:        cfg.Phone.Depth,
		BodyRadius:   cfg.Phone.BodyRadius,
		ScreenRadius: cfg.Phone.ScreenRadius,
		ScreenDepth:  cfg.Phone.ScreenDepth,
	})
	s.Scene.Add(s.Rig.Group)

	aspect := 1.0
	if s.width > 0 && s.height > 0 {
		aspect = float64(s.width) / float64(s.height)
	}
	s.Camera = scene.NewPerspectiveCamera(cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far)
	s.Camera.Position = mgl64.Vec3{0, 0, cfg.Camera.Distance}
	s.Camera.LookAt(mgl64.Vec3{})

	sw, sh := s.Rig.ScreenSize()
	s.projector = Projector{
		ScreenWidth:  sw,
		ScreenHeight: sh,
		Threshold:    cfg.Overlay.VisibilityThreshold,
	}

	var backdrop Backdrop
	if cfg.Home.Background != "" {
		backdrop = &FileBackdrop{Path: cfg.Home.Background}
	}
	s.home = NewHomeScreen(cfg.Home.Locale, backdrop)

	s.router = NewRouter(s, s, s.Viewport, cfg.Input.DragSensitivity)
	s.power = NewPowerMachine(s.sched, cfg.Boot.Duration.Std(), cfg.Boot.Interval.Std(), s.onPower)
	return s
}

// Events returns the bus carrying power, volume and button events.
func (s *Session) Events() *EventBus { return s.bus }

// Input returns the pointer/touch router hosts feed events into.
func (s *Session) Input() *Router { return s.router }

func (s *Session) PowerState() PowerState { return s.power.State() }
func (s *Session) BootProgress() float64  { return s.power.Progress() }
func (s *Session) Volume() Volume         { return s.volume }
func (s *Session) Content() Content       { return s.content }
func (s *Session) Placement() Placement   { return s.placement }
func (s *Session) Scheduler() *Scheduler  { return s.sched }

// Viewport returns the drawable size in pixels.
func (s *Session) Viewport() (int, int) { return s.width, s.height }

// Resize updates the viewport and camera aspect. Non-positive sizes (a
// minimised window) are ignored.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.Camera.SetAspect(float64(width) / float64(height))
}

// SetZoom records the host's overlay zoom. The overlay shrinks by
// scale / baseline so it keeps its on-screen size under page zoom.
func (s *Session) SetZoom(scale float64) {
	if scale <= 0 {
		return
	}
	s.zoom = scale
}

func (s *Session) normalizedZoom() float64 {
	if s.cfg.Overlay.BaselineZoom <= 0 {
		return 1
	}
	return s.zoom / s.cfg.Overlay.BaselineZoom
}

// ResetOrientation stops any spin and faces the phone to the camera.
func (s *Session) ResetOrientation() {
	s.router.State.Velocity = Velocity{}
	s.Rig.SetOrientation(Orientation{})
}

// Tick runs due timers and, when the frame limiter allows, one frame of
// momentum and overlay projection. It reports whether the host should draw.
func (s *Session) Tick() bool {
	now := s.clock.Now()
	s.sched.Advance(now)
	if !s.frame.Ready(now) {
		return false
	}

	o := s.momentum.Step(&s.router.State.Velocity, s.Rig.Orientation())
	s.Rig.SetOrientation(o)

	if s.power.State().On() {
		s.placement = s.projector.Project(s.Rig.Screen, s.Rig.Group, s.Rig.ScreenFaceCenter(),
			s.Camera, s.width, s.height, s.normalizedZoom())
		if s.overlay != nil {
			s.overlay.Place(s.placement)
		}
	}
	return true
}

// Pick returns the nearest button under a normalized device coordinate.
func (s *Session) Pick(ndcX, ndcY float64) (Control, bool) {
	s.raycaster.SetFromCamera(ndcX, ndcY, s.Camera)
	hits := s.raycaster.IntersectObjects(s.Rig.ButtonNodes())
	if len(hits) == 0 {
		return 0, false
	}
	return ParseControl(hits[0].Node.Tag)
}

// Press performs a button's action with visual and audio feedback.
func (s *Session) Press(c Control) {
	s.log.Debug("Button pressed", "control", c)
	s.flash(c)
	s.play(SoundClick, 1)
	s.bus.Emit(Event{Type: EventButtonPressed, Control: c})

	switch c {
	case ControlPower:
		s.power.Toggle()
	case ControlVolumeUp, ControlVolumeDown:
		if c == ControlVolumeUp {
			s.volume.Up()
		} else {
			s.volume.Down()
		}
		s.log.Debug("Volume changed", "volume", s.volume.Level)
		s.play(SoundVolume, s.volume.Fraction())
		s.bus.Emit(Event{Type: EventVolumeChanged, Control: c, Volume: s.volume.Level, MaxVol: s.volume.Max})
		s.showVolumeIndicator()
	}
}

// flash darkens a button and restores its base colour after the feedback
// duration. A newer press on the same button re-arms the timer.
func (s *Session) flash(c Control) {
	s.feedback[c].Stop()
	s.Rig.SetButtonColor(c, scene.Palette.ButtonPressed)
	s.feedback[c] = s.sched.After(s.cfg.Input.FeedbackDuration.Std(), func(time.Time) {
		s.Rig.SetButtonColor(c, s.Rig.Button(c).BaseColor)
		s.feedback[c] = nil
	})
}

func (s *Session) showVolumeIndicator() {
	if !s.power.State().On() {
		return
	}
	s.indicator.Stop()
	s.content.Indicator = VolumeLabel(s.volume.Level)
	s.pushContent()
	s.indicator = s.sched.After(s.cfg.Overlay.IndicatorDuration.Std(), func(time.Time) {
		s.indicator = nil
		s.content.Indicator = ""
		s.pushContent()
	})
}

func (s *Session) onPower(state PowerState, progress float64) {
	entered := state != s.lastPower
	s.lastPower = state
	switch state {
	case PowerBooting:
		if entered {
			s.log.Info("Powering on")
			s.Rig.SetScreenLighting(scene.Palette.EmissiveBoot, 1)
			s.bus.Emit(Event{Type: EventPowerChanged, State: state})
		}
		indicator := s.content.Indicator
		s.content = BootContent(s.cfg.Boot.Title, progress)
		s.content.Indicator = indicator
		s.pushContent()
		s.bus.Emit(Event{Type: EventBootProgress, State: state, Progress: progress})
	case PowerHome:
		s.log.Info("Boot complete")
		s.Rig.SetScreenLighting(scene.Palette.EmissiveHome, 2)
		s.showHome(s.clock.Now())
		s.clockTick.Stop()
		s.clockTick = s.sched.Every(time.Second, s.refreshClock)
		s.play(SoundBoot, 1)
		s.bus.Emit(Event{Type: EventPowerChanged, State: state})
	case PowerOff:
		s.log.Info("Powering off")
		s.clockTick.Stop()
		s.clockTick = nil
		s.indicator.Stop()
		s.indicator = nil
		s.Rig.SetScreenLighting(scene.Palette.EmissiveOff, 0)
		s.content = Content{Kind: ContentBlank}
		s.pushContent()
		s.placement = Placement{}
		if s.overlay != nil {
			s.overlay.Place(s.placement)
		}
		s.play(SoundPowerOff, 1)
		s.bus.Emit(Event{Type: EventPowerChanged, State: state})
	}
}

func (s *Session) showHome(now time.Time) {
	indicator := s.content.Indicator
	c, err := s.home.Build(now)
	if err != nil {
		s.log.Warn("Home screen failed, showing placeholder", "error", err)
		c = s.home.ErrorContent(now)
	}
	c.Indicator = indicator
	s.content = c
	s.pushContent()
}

// refreshClock rebuilds the home screen when the minute changes.
func (s *Session) refreshClock(now time.Time) {
	if s.power.State() != PowerHome {
		return
	}
	if FormatClock(now) == s.content.Time {
		return
	}
	s.showHome(now)
}

func (s *Session) pushContent() {
	if s.overlay != nil {
		s.overlay.SetContent(s.content)
	}
}

func (s *Session) play(snd Sound, gain float64) {
	if s.sound != nil {
		s.sound.Play(snd, gain)
	}
}
