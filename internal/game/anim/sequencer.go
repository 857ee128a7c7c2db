package anim

// Sequencer holds at most one in-flight animation and its frame counter.
// Animations are pulled from the source one at a time, in source order.
type Sequencer struct {
	pop    func() (Animation, bool)
	scale  int
	cur    Animation
	active bool
	frame  int
}

// NewSequencer creates a Sequencer drawing animations from pop. Every
// animation plays for Frames*framesPerTick render cycles.
//
// Precondition: pop must be non-nil; framesPerTick >= 1.
func NewSequencer(pop func() (Animation, bool), framesPerTick int) *Sequencer {
	if framesPerTick < 1 {
		framesPerTick = 1
	}
	return &Sequencer{pop: pop, scale: framesPerTick}
}

// Start pulls the next animation once a command has been processed.
//
// Precondition: no animation is in flight.
func (s *Sequencer) Start() {
	if s.active {
		panic("anim: Start called while an animation is in flight")
	}
	s.cur, s.active = s.pop()
	s.frame = 0
}

// Tick runs one render cycle. An animation whose frames are exhausted is
// replaced by the next one from the source with the counter reset to zero.
// The counter advances only while an animation is active.
//
// Postcondition: Returns the animation and frame to draw this cycle, or ok == false.
func (s *Sequencer) Tick() (a Animation, frame int, ok bool) {
	if s.active && s.frame >= s.cur.Frames*s.scale {
		s.cur, s.active = s.pop()
		s.frame = 0
	}
	if !s.active {
		return Animation{}, 0, false
	}
	a, frame = s.cur, s.frame/s.scale
	s.frame++
	return a, frame, true
}

// Current returns the in-flight animation and its frame without advancing.
func (s *Sequencer) Current() (Animation, int, bool) {
	if !s.active {
		return Animation{}, 0, false
	}
	return s.cur, s.frame / s.scale, true
}

// InFlight reports whether an animation is active.
func (s *Sequencer) InFlight() bool {
	return s.active
}
