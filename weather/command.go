package weather

// Command is one inbound instruction for a Worker. The set is closed;
// the worker's dispatch switch carries an explicit default arm so an
// unknown payload is dropped rather than treated as a bug (the effect
// must degrade silently, never take the host down).
type Command interface {
	isCommand()
}

// InitCommand (re)creates the population and marks the simulation
// active. No reply.
type InitCommand struct {
	Config Config
}

// DensityCommand regenerates the population at a new size and base
// radius. The active flag is preserved across the regeneration: a
// stopped simulation stays stopped, a running one keeps running.
// No reply.
type DensityCommand struct {
	Density    int
	BaseRadius float64
}

// UpdateCommand advances every particle by one tick using the supplied
// canvas dimensions and replies with a post-tick Snapshot. A no-op
// (and no reply) while inactive. Generation is echoed back so the
// controller can discard replies from a previous session.
type UpdateCommand struct {
	CanvasWidth  float64
	CanvasHeight float64
	Generation   uint64
}

// StopCommand marks the simulation inactive and empties the
// population. No reply.
type StopCommand struct{}

func (InitCommand) isCommand()    {}
func (DensityCommand) isCommand() {}
func (UpdateCommand) isCommand()  {}
func (StopCommand) isCommand()    {}

// Snapshot is the full post-tick particle state emitted once per
// update. Particles is a fresh copy owned by the receiver.
type Snapshot struct {
	Generation uint64
	Particles  []Particle
}
