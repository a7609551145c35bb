package service

import (
	"errors"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
)

// ErrNegativeQuantity is returned when UpdateQuantity is called with a
// quantity below zero. The cart state is left unchanged.
var ErrNegativeQuantity = errors.New("quantity must not be negative")

// ErrCartClosed is returned when a command reaches a store whose reducer
// loop has already stopped, i.e. the owning session was evicted while the
// caller still held a reference to it.
var ErrCartClosed = errors.New("cart store is closed")

// NotificationSink receives the product title after a successful Add.
// It backs toast-style feedback and is entirely optional: the store works
// without one.
type NotificationSink func(productTitle string)

// SnapshotSink receives the full cart state after every mutation. The host
// uses it to persist the cart; the store never blocks on it (invoked
// synchronously inside the command loop, so implementations should hand
// off to their own worker if storage is slow).
type SnapshotSink func(state model.CartState)

// CartStore defines the command interface of one cart.
// All commands are atomic with respect to the line list and totals.
type CartStore interface {
	// Add puts one unit of product in the cart: a new line with quantity 1,
	// or +1 on the existing line. Totals always move by exactly one unit.
	Add(product model.Product) model.CartState
	// Remove deletes the line for id, subtracting its full quantity and
	// amount. Absent ids are a benign no-op.
	Remove(id int) model.CartState
	// UpdateQuantity sets the line's quantity. 0 is equivalent to Remove,
	// negative values are rejected with ErrNegativeQuantity, absent ids
	// are a no-op.
	UpdateQuantity(id, quantity int) (model.CartState, error)
	// Clear resets the cart to the empty state unconditionally.
	Clear() model.CartState
	// Snapshot returns a copy of the current state.
	Snapshot() model.CartState
	// Restore replaces the state with a previously persisted snapshot.
	Restore(state model.CartState)
	// Close stops the command loop. The store must not be used afterwards.
	Close()
}

// CartOption configures a cart store.
type CartOption func(*cartStore)

// WithNotificationSink installs the optional post-Add callback.
func WithNotificationSink(sink NotificationSink) CartOption {
	return func(s *cartStore) {
		s.notify = sink
	}
}

// WithSnapshotSink installs the persistence callback invoked after every
// mutation.
func WithSnapshotSink(sink SnapshotSink) CartOption {
	return func(s *cartStore) {
		s.persist = sink
	}
}

// cartCommand is one unit of work for the command loop. Exactly one
// goroutine applies commands, so the read-modify-write of state and totals
// never interleaves: the single-writer discipline replaces locking.
type cartCommand struct {
	apply func(*model.CartState) error
	reply chan cartReply
}

type cartReply struct {
	state model.CartState
	err   error
}

// cartStore implements CartStore with a single-threaded reducer loop.
type cartStore struct {
	commands chan cartCommand
	done     chan struct{}
	notify   NotificationSink
	persist  SnapshotSink
}

// NewCartStore creates an empty cart store and starts its command loop.
func NewCartStore(opts ...CartOption) CartStore {
	s := &cartStore{
		commands: make(chan cartCommand),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// run is the reducer loop: it owns the state exclusively.
func (s *cartStore) run() {
	state := model.EmptyCart()
	for {
		select {
		case cmd := <-s.commands:
			err := cmd.apply(&state)
			cmd.reply <- cartReply{state: state.Clone(), err: err}
		case <-s.done:
			return
		}
	}
}

// dispatch sends one command to the loop and waits for its reply. Once the
// loop has accepted the command a reply is guaranteed (the reply channel is
// buffered), so only the send needs a closed-store escape hatch.
func (s *cartStore) dispatch(apply func(*model.CartState) error) (model.CartState, error) {
	cmd := cartCommand{apply: apply, reply: make(chan cartReply, 1)}
	select {
	case s.commands <- cmd:
	case <-s.done:
		return model.EmptyCart(), ErrCartClosed
	}
	reply := <-cmd.reply
	return reply.state, reply.err
}

func (s *cartStore) Add(product model.Product) model.CartState {
	state, err := s.dispatch(func(state *model.CartState) error {
		found := false
		for i := range state.Items {
			if state.Items[i].ID == product.ID {
				state.Items[i].Quantity++
				found = true
				break
			}
		}
		if !found {
			state.Items = append(state.Items, model.CartItem{Product: product, Quantity: 1})
		}
		// Always exactly one unit, whether the line is new or existing.
		state.TotalQuantity++
		state.TotalAmount += product.Price
		return nil
	})
	if err != nil {
		return state
	}
	metrics.RecordCartOperation("add", "success")
	if s.notify != nil {
		s.notify(product.Title)
	}
	if s.persist != nil {
		s.persist(state)
	}
	return state
}

func (s *cartStore) Remove(id int) model.CartState {
	state, err := s.dispatch(func(state *model.CartState) error {
		removeLine(state, id)
		return nil
	})
	if err != nil {
		return state
	}
	metrics.RecordCartOperation("remove", "success")
	if s.persist != nil {
		s.persist(state)
	}
	return state
}

func (s *cartStore) UpdateQuantity(id, quantity int) (model.CartState, error) {
	state, err := s.dispatch(func(state *model.CartState) error {
		if quantity < 0 {
			return ErrNegativeQuantity
		}
		if quantity == 0 {
			removeLine(state, id)
			return nil
		}
		for i := range state.Items {
			if state.Items[i].ID == id {
				diff := quantity - state.Items[i].Quantity
				state.TotalQuantity += diff
				state.TotalAmount += state.Items[i].Price * float64(diff)
				state.Items[i].Quantity = quantity
				return nil
			}
		}
		// Absent line: no-op, not an error.
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNegativeQuantity) {
			metrics.RecordCartOperation("update_quantity", "invalid_argument")
		}
		return state, err
	}
	metrics.RecordCartOperation("update_quantity", "success")
	if s.persist != nil {
		s.persist(state)
	}
	return state, nil
}

func (s *cartStore) Clear() model.CartState {
	state, err := s.dispatch(func(state *model.CartState) error {
		*state = model.EmptyCart()
		return nil
	})
	if err != nil {
		return state
	}
	metrics.RecordCartOperation("clear", "success")
	if s.persist != nil {
		s.persist(state)
	}
	return state
}

func (s *cartStore) Snapshot() model.CartState {
	state, _ := s.dispatch(func(state *model.CartState) error {
		return nil
	})
	return state
}

func (s *cartStore) Restore(snapshot model.CartState) {
	_, _ = s.dispatch(func(state *model.CartState) error {
		*state = snapshot.Clone()
		if state.Items == nil {
			state.Items = []model.CartItem{}
		}
		return nil
	})
}

func (s *cartStore) Close() {
	close(s.done)
}

// removeLine deletes the line for id, adjusting totals by the line's full
// quantity and amount. No-op when absent.
func removeLine(state *model.CartState, id int) {
	for i := range state.Items {
		if state.Items[i].ID == id {
			state.TotalQuantity -= state.Items[i].Quantity
			state.TotalAmount -= state.Items[i].LineTotal()
			state.Items = append(state.Items[:i], state.Items[i+1:]...)
			return
		}
	}
}
