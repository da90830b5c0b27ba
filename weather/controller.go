package weather

// Controller is the render-thread side of the simulation. It owns the
// canvas dimensions and density configuration, issues lifecycle
// commands to the worker, and holds the last received snapshot as the
// sole source of particle truth for drawing. It never extrapolates
// positions between replies.
//
// Not safe for concurrent use; it belongs to the frame loop.
type Controller struct {
	worker *Worker
	cfg    Config

	// generation tags a logical simulation session. Bumped on Start
	// and Stop so replies that straddle a session change are dropped.
	generation uint64

	running  bool
	snapshot []Particle

	// droppedTicks counts update commands refused because the worker's
	// queue was full. Surfaced to telemetry.
	droppedTicks uint64
}

// NewController wraps a running worker. The controller assumes sole
// ownership of the worker's command stream.
func NewController(w *Worker) *Controller {
	return &Controller{worker: w}
}

// Start begins a simulation session with the given config. Calling it
// again before Stop re-initializes the worker, discarding prior state.
func (c *Controller) Start(cfg Config) {
	c.cfg = cfg
	c.generation++
	c.running = true
	c.snapshot = nil
	c.worker.Send(InitCommand{Config: cfg})
}

// SetDensity changes the population size and base radius. The cached
// config is updated synchronously so the next Tick already uses the new
// values, before any worker reply arrives.
func (c *Controller) SetDensity(density int, baseRadius float64) {
	c.cfg.Density = density
	c.cfg.BaseRadius = baseRadius
	c.worker.Send(DensityCommand{Density: density, BaseRadius: baseRadius})
}

// Tick requests one simulation step at the given canvas size. Never
// blocks; reports false when the simulation is stopped or the frame was
// dropped because the worker is saturated.
func (c *Controller) Tick(canvasWidth, canvasHeight float64) bool {
	if !c.running {
		return false
	}
	c.cfg.CanvasWidth = canvasWidth
	c.cfg.CanvasHeight = canvasHeight
	ok := c.worker.TrySend(UpdateCommand{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Generation:   c.generation,
	})
	if !ok {
		c.droppedTicks++
	}
	return ok
}

// Stop ends the session. The held snapshot is discarded immediately;
// any update reply still in flight carries an old generation and will
// be ignored when it arrives.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.generation++
	c.snapshot = nil
	c.worker.Send(StopCommand{})
}

// Running reports whether a session is active.
func (c *Controller) Running() bool {
	return c.running
}

// DroppedTicks returns the number of update frames skipped so far.
func (c *Controller) DroppedTicks() uint64 {
	return c.droppedTicks
}

// Config returns the controller's cached configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Snapshot drains pending worker replies and returns the latest
// particle state, or nil when none has arrived this session. The
// returned slice is owned by the controller and valid until the next
// call; renderers read it within the frame.
func (c *Controller) Snapshot() []Particle {
	c.poll()
	return c.snapshot
}

// poll is the single reply handler: it consumes every queued reply,
// keeps the newest one from the current session, and discards the rest.
func (c *Controller) poll() {
	for {
		select {
		case snap := <-c.worker.Snapshots():
			if snap.Generation != c.generation || !c.running {
				continue
			}
			c.snapshot = snap.Particles
		default:
			return
		}
	}
}
