package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

// slot holds one value of every effect type, only the one matching kind is
// live. The storage is reused for every effect so switching between them
// does not allocate.
type slot struct {
	kind        Kind
	live        bool
	alternating AlternatingBlink
	glitter     GlitterBlink
	snake       SnakeAnimation
	island      IslandAnimation
	move        MoveAnimation
	sprinkle    SprinkleAnimation
	stacks      FallingStacks
	rotation    RotationAnimation
}

// Pool owns the single effect the scheduler is running. Creating a new effect
// always destroys the current one first, so two are never live at once.
type Pool struct {
	slot slot

	// Released is invoked exactly once for every effect that gets destroyed,
	// before its storage is reused
	Released func(Animation)
}

// Get returns the live effect, or nil if there is none
func (p *Pool) Get() Animation {
	if !p.slot.live {
		return nil
	}
	switch p.slot.kind {
	case KindAlternatingBlink:
		return &p.slot.alternating
	case KindGlitterBlink:
		return &p.slot.glitter
	case KindSnake:
		return &p.slot.snake
	case KindIsland:
		return &p.slot.island
	case KindMove:
		return &p.slot.move
	case KindSprinkle:
		return &p.slot.sprinkle
	case KindFallingStacks:
		return &p.slot.stacks
	case KindRotation:
		return &p.slot.rotation
	}
	return nil
}

// Kind of the live effect, false when the pool is empty
func (p *Pool) Kind() (Kind, bool) {
	return p.slot.kind, p.slot.live
}

// Release destroys the live effect, if any
func (p *Pool) Release() {
	if !p.slot.live {
		return
	}
	if p.Released != nil {
		p.Released(p.Get())
	}
	switch p.slot.kind {
	case KindAlternatingBlink:
		p.slot.alternating = AlternatingBlink{}
	case KindGlitterBlink:
		p.slot.glitter = GlitterBlink{}
	case KindSnake:
		p.slot.snake = SnakeAnimation{}
	case KindIsland:
		p.slot.island = IslandAnimation{}
	case KindMove:
		p.slot.move = MoveAnimation{}
	case KindSprinkle:
		p.slot.sprinkle = SprinkleAnimation{}
	case KindFallingStacks:
		p.slot.stacks = FallingStacks{}
	case KindRotation:
		p.slot.rotation = RotationAnimation{}
	}
	p.slot.live = false
}

// Create destroys the live effect and constructs a new one of the given kind
// in its place. Effects that paint an initial state do so onto s right away.
func (p *Pool) Create(kind Kind, s *strip.Strip, rnd *rand.Rand) Animation {
	p.Release()

	switch kind {
	case KindAlternatingBlink:
		p.slot.alternating = NewRandomAlternatingBlink(rnd)
	case KindGlitterBlink:
		p.slot.glitter = NewGlitterBlink(s, rnd)
	case KindSnake:
		p.slot.snake = NewSnakeAnimation(s, rnd)
	case KindIsland:
		p.slot.island = NewIslandAnimation(s, rnd)
	case KindMove:
		p.slot.move = NewMoveAnimation(s, rnd)
	case KindSprinkle:
		p.slot.sprinkle = NewSprinkleAnimation(s, rnd)
	case KindFallingStacks:
		p.slot.stacks = NewFallingStacks(s, rnd)
	case KindRotation:
		p.slot.rotation = NewRandomRotation(s, rnd)
	default:
		return nil
	}
	p.slot.kind = kind
	p.slot.live = true
	return p.Get()
}
