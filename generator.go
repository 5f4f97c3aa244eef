package iterkit

import (
	"errors"
	"sync"

	"go.llib.dev/iterkit/internal/errorkitlite"
)

// Generate starts the producer function in its own goroutine,
// and returns the consumer side cursor of the exchange.
//
// The producer publishes values through the Yielder,
// and learns about consumer input (Gen.Send), injected faults (Gen.Throw)
// and early termination (Gen.Close) from the Yield return values.
// A producer that received the Break sentinel is expected to run its cleanup and return.
//
// The exchange is a synchronous request-response:
// the producer suspends in Yield until the consumer requests the next value.
func Generate[In, Out any](produce func(y *Yielder[In, Out]) error) *Gen[In, Out] {
	g := &Gen[In, Out]{
		vals:   make(chan Out),
		resume: make(chan resumeMsg[In]),
		halt:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go func() {
		var rErr error
		func() {
			defer errorkitlite.Recover(&rErr)
			rErr = produce(&Yielder[In, Out]{gen: g})
		}()
		if errors.Is(rErr, Break) {
			rErr = nil
		}
		g.err = rErr
		close(g.vals)
		close(g.done)
	}()
	return g
}

// Yielder is the producer side handle of a Gen exchange.
type Yielder[In, Out any] struct {
	gen *Gen[In, Out]
}

// Yield publishes the next value and suspends until the consumer requests another one.
// The returned input is the value the consumer passed in with Gen.Send for this resumption.
// A non nil error is either an injected fault from Gen.Throw,
// or the Break sentinel when the consumer terminated the iteration early.
func (y *Yielder[In, Out]) Yield(v Out) (In, error) {
	g := y.gen
	var zero In
	select {
	case g.vals <- v:
	case <-g.halt:
		return zero, Break
	}
	select {
	case r := <-g.resume:
		return r.in, r.err
	case <-g.halt:
		return zero, Break
	}
}

type resumeMsg[In any] struct {
	in  In
	err error
}

// Gen is the consumer side cursor of a generator exchange.
// It is an Iter that is also its own Iterable,
// and it supports the optional fault injection capability through Throw.
//
// A Gen is meant for a single logical consumer;
// its methods must not be called concurrently.
type Gen[In, Out any] struct {
	vals   chan Out
	resume chan resumeMsg[In]
	halt   chan struct{}
	done   chan struct{}

	val      Out
	err      error
	peeked   *Out
	pending  resumeMsg[In]
	started  bool
	finished bool

	closeOnce sync.Once
}

func (g *Gen[In, Out]) Next() bool {
	if g.finished {
		return false
	}
	if g.peeked != nil {
		g.val = *g.peeked
		g.peeked = nil
		return true
	}
	if g.started {
		select {
		case g.resume <- g.pending:
		case <-g.done:
		}
		g.pending = resumeMsg[In]{}
	}
	g.started = true
	v, ok := <-g.vals
	if !ok {
		g.finished = true
		return false
	}
	g.val = v
	return true
}

func (g *Gen[In, Out]) Value() Out {
	return g.val
}

// Err reports the producer's failure cause once the producer finished.
func (g *Gen[In, Out]) Err() error {
	select {
	case <-g.done:
		return g.err
	default:
		return nil
	}
}

// Send sets the input value that the producer receives on the next advance.
func (g *Gen[In, Out]) Send(in In) {
	g.pending.in = in
}

// Throw injects the fault at the producer's current suspension point.
// When the producer recovers from the fault by yielding a further value,
// Throw returns nil and the iteration may continue.
// When the producer terminates on the fault, the failure propagates as the return value.
// A value the producer published before the fault was delivered is discarded.
func (g *Gen[In, Out]) Throw(err error) error {
	if g.finished {
		return err
	}
	g.peeked = nil
	for {
		select {
		case g.resume <- resumeMsg[In]{err: err}:
			g.started = true
			g.pending = resumeMsg[In]{}
			select {
			case v, ok := <-g.vals:
				if !ok {
					g.finished = true
					return g.err
				}
				g.peeked = &v
				return nil
			case <-g.done:
				g.finished = true
				return g.err
			}
		case v, ok := <-g.vals:
			if !ok {
				// the producer completed before the fault could reach it,
				// so the failure belongs to the caller
				g.finished = true
				return errorkitlite.Merge(g.err, err)
			}
			_ = v // in-flight value published before the fault, discarded
			g.started = true
		}
	}
}

// Close requests early termination,
// giving the producer the chance to release its held resources,
// and waits until the producer finished.
func (g *Gen[In, Out]) Close() error {
	g.closeOnce.Do(func() {
		close(g.halt)
		<-g.done
		g.finished = true
	})
	return nil
}

func (g *Gen[In, Out]) Iterate() Iter[Out] {
	return g
}

var (
	_ IterIterable[any] = (*Gen[struct{}, any])(nil)
	_ Thrower           = (*Gen[struct{}, any])(nil)
)
