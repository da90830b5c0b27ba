package weather

import "log/slog"

// Channel capacities. Commands buffer enough frames that the render
// thread never blocks on a send; snapshots buffer a couple of replies
// so the worker never blocks on a slow consumer either.
const (
	commandBuffer  = 64
	snapshotBuffer = 4
)

// simState is the worker-side simulation truth: the population, the
// mirrored config, and the active flag. It is owned by the dispatch
// loop and never escapes the worker goroutine.
type simState struct {
	cfg        Config
	tuning     Tuning
	rng        Source
	population []Particle
	active     bool
}

func (s *simState) init(cfg Config) {
	s.cfg = cfg
	s.population = newPopulation(cfg, s.tuning, s.rng)
	s.active = true
}

// setDensity regenerates the population at the new size. The active
// flag is read before and restored after, so density changes never
// implicitly start or stop the simulation.
func (s *simState) setDensity(density int, baseRadius float64) {
	wasActive := s.active
	s.cfg.Density = density
	s.cfg.BaseRadius = baseRadius
	s.population = newPopulation(s.cfg, s.tuning, s.rng)
	s.active = wasActive
}

func (s *simState) stop() {
	s.active = false
	s.population = nil
}

// step advances every particle by one tick at the given canvas size.
func (s *simState) step(canvasWidth, canvasHeight float64) {
	s.cfg.CanvasWidth = canvasWidth
	s.cfg.CanvasHeight = canvasHeight
	for i := range s.population {
		stepParticle(&s.population[i], canvasWidth, canvasHeight, s.tuning, s.rng)
	}
}

// snapshot returns an independent copy of the population.
func (s *simState) snapshot() []Particle {
	out := make([]Particle, len(s.population))
	copy(out, s.population)
	return out
}

// Worker runs the simulation on its own goroutine. Commands are
// processed strictly in arrival order; there is exactly one logical
// thread of control inside the worker, so no locking is needed.
type Worker struct {
	commands  chan Command
	snapshots chan Snapshot
	quit      chan struct{}
}

// NewWorker starts the worker goroutine. The random source is owned by
// the worker from here on and must not be used elsewhere.
func NewWorker(tuning Tuning, src Source) *Worker {
	w := &Worker{
		commands:  make(chan Command, commandBuffer),
		snapshots: make(chan Snapshot, snapshotBuffer),
		quit:      make(chan struct{}),
	}
	go w.run(tuning, src)
	return w
}

// Snapshots is the reply stream for update commands.
func (w *Worker) Snapshots() <-chan Snapshot {
	return w.snapshots
}

// Send enqueues a command, blocking if the buffer is full. A closed
// worker swallows the command.
func (w *Worker) Send(cmd Command) {
	if w.closed() {
		return
	}
	select {
	case w.commands <- cmd:
	case <-w.quit:
	}
}

// TrySend enqueues a command without blocking. Reports whether the
// command was accepted; a full buffer drops the command, which for
// update ticks just means the frame is skipped.
func (w *Worker) TrySend(cmd Command) bool {
	if w.closed() {
		return false
	}
	select {
	case w.commands <- cmd:
		return true
	default:
		return false
	}
}

func (w *Worker) closed() bool {
	select {
	case <-w.quit:
		return true
	default:
		return false
	}
}

// Close tears the worker goroutine down. Pending commands are
// abandoned. Safe to call once.
func (w *Worker) Close() {
	close(w.quit)
}

func (w *Worker) run(tuning Tuning, src Source) {
	sim := &simState{tuning: tuning, rng: src}
	for {
		select {
		case <-w.quit:
			return
		case cmd := <-w.commands:
			w.dispatch(sim, cmd)
		}
	}
}

func (w *Worker) dispatch(sim *simState, cmd Command) {
	switch c := cmd.(type) {
	case InitCommand:
		sim.init(c.Config)
		slog.Debug("weather worker initialized",
			"density", c.Config.Density,
			"canvas_w", c.Config.CanvasWidth,
			"canvas_h", c.Config.CanvasHeight,
		)
	case DensityCommand:
		sim.setDensity(c.Density, c.BaseRadius)
	case UpdateCommand:
		if !sim.active {
			// Stale update from before a stop; no snapshot.
			return
		}
		sim.step(c.CanvasWidth, c.CanvasHeight)
		snap := Snapshot{Generation: c.Generation, Particles: sim.snapshot()}
		select {
		case w.snapshots <- snap:
		default:
			// Consumer is behind; it keeps rendering the snapshot it
			// already holds, so dropping this one is harmless.
		}
	case StopCommand:
		sim.stop()
	default:
		// Unknown commands are ignored on purpose, per the protocol.
	}
}
