// Package game holds the authoritative Scoundrel session state: the draw
// pile, the current room, the weapon slot, the discard pile and the last
// enemy defeated with a weapon.
//
// Every card lives in exactly one place at a time. The mutators in this
// package move one card from one container to another or fail without
// changing anything. How a room is resolved (damage, health, fleeing) is
// not decided here.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Avyukt27/Scoundrel-TUI/internal/card"
)

// DefaultRoomSize is the number of cards a full room holds.
const DefaultRoomSize = 4

// Errors returned by the slot transitions.
var (
	ErrNoRoom         = errors.New("game: no room drawn")
	ErrRoomIndex      = errors.New("game: room index out of range")
	ErrNoWeapon       = errors.New("game: no weapon equipped")
	ErrWeaponEquipped = errors.New("game: weapon already equipped")
	ErrIntegrity      = errors.New("game: card integrity violated")
)

// Options configures a new session.
type Options struct {
	Seed     int64       // Shuffle seed; 0 means time based
	RoomSize int         // Cards per room; 0 means DefaultRoomSize
	Logger   *log.Logger // Optional; nil discards session logs
}

// Session is the mutable root of a game. It is owned by a single run loop
// and must not be shared between goroutines.
type Session struct {
	id        uuid.UUID
	rng       *rand.Rand
	logger    *log.Logger
	roomSize  int
	total     int
	deck      *card.Deck
	room      Slot[[]card.Card]
	weapon    Slot[card.Card]
	discard   []card.Card // Top of the pile is the last element
	lastEnemy Slot[card.Card]
}

// New builds the dungeon deck, shuffles it once and leaves every other
// slot empty.
func New(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	roomSize := opts.RoomSize
	if roomSize <= 0 {
		roomSize = DefaultRoomSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		id:       uuid.New(),
		rng:      rand.New(rand.NewSource(seed)),
		roomSize: roomSize,
		deck:     card.Dungeon(),
	}
	s.logger = logger.With("session", s.id.String())
	s.total = s.deck.Len()
	s.deck.Shuffle(s.rng)

	s.logger.Debug("session created", "deck", s.deck.Len(), "room_size", roomSize)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// RoomSize returns the number of cards a full room holds.
func (s *Session) RoomSize() int {
	return s.roomSize
}

// DeckLen returns the number of cards left in the draw pile.
func (s *Session) DeckLen() int {
	return s.deck.Len()
}

// DrawRoom tops the room up to RoomSize cards from the deck.
// Cards already in the room stay where they are. Returns the number of
// cards drawn, which is 0 once the deck runs out.
func (s *Session) DrawRoom() int {
	room, _ := s.room.Get()
	room = slices.Clone(room)

	drawn := 0
	for len(room) < s.roomSize {
		c, ok := s.deck.Draw()
		if !ok {
			break
		}
		room = append(room, c)
		drawn++
	}

	if drawn > 0 || s.room.IsSome() {
		s.room = Some(room)
	}
	s.logger.Debug("room drawn", "drawn", drawn, "room", len(room), "deck", s.deck.Len())
	return drawn
}

// takeFromRoom returns the card at index i and the room without it.
// The session is not modified.
func (s *Session) takeFromRoom(i int) (card.Card, []card.Card, error) {
	room, ok := s.room.Get()
	if !ok {
		return card.Card{}, nil, ErrNoRoom
	}
	if i < 0 || i >= len(room) {
		return card.Card{}, nil, fmt.Errorf("%w: %d (room holds %d)", ErrRoomIndex, i, len(room))
	}
	rest := slices.Delete(slices.Clone(room), i, i+1)
	return room[i], rest, nil
}

// EquipFromRoom moves room card i into the weapon slot.
// Fails with ErrWeaponEquipped if a weapon is already held.
func (s *Session) EquipFromRoom(i int) error {
	if s.weapon.IsSome() {
		return ErrWeaponEquipped
	}
	c, rest, err := s.takeFromRoom(i)
	if err != nil {
		return fmt.Errorf("equip: %w", err)
	}

	s.room = Some(rest)
	s.weapon = Some(c)
	s.logger.Debug("weapon equipped", "card", c)
	return nil
}

// DefeatWithWeapon moves room card i into the last-enemy slot. A weapon
// must be equipped. The previous last enemy goes to the discard pile.
func (s *Session) DefeatWithWeapon(i int) error {
	if s.weapon.IsNone() {
		return ErrNoWeapon
	}
	c, rest, err := s.takeFromRoom(i)
	if err != nil {
		return fmt.Errorf("defeat: %w", err)
	}

	if prev, ok := s.lastEnemy.Get(); ok {
		s.discard = append(s.discard, prev)
	}
	s.room = Some(rest)
	s.lastEnemy = Some(c)
	s.logger.Debug("enemy defeated", "card", c)
	return nil
}

// DiscardFromRoom moves room card i onto the discard pile.
func (s *Session) DiscardFromRoom(i int) error {
	c, rest, err := s.takeFromRoom(i)
	if err != nil {
		return fmt.Errorf("discard: %w", err)
	}

	s.room = Some(rest)
	s.discard = append(s.discard, c)
	s.logger.Debug("card discarded", "card", c, "pile", len(s.discard))
	return nil
}

// DiscardWeapon moves the weapon onto the discard pile, followed by the
// last enemy it defeated, if any.
func (s *Session) DiscardWeapon() error {
	w, ok := s.weapon.Get()
	if !ok {
		return ErrNoWeapon
	}

	s.discard = append(s.discard, w)
	s.weapon = None[card.Card]()
	if e, ok := s.lastEnemy.Get(); ok {
		s.discard = append(s.discard, e)
		s.lastEnemy = None[card.Card]()
	}
	s.logger.Debug("weapon discarded", "card", w, "pile", len(s.discard))
	return nil
}

// ReturnRoomToDeck puts the remaining room cards back onto the deck in
// room order and clears the room. Returns the number of cards returned.
func (s *Session) ReturnRoomToDeck() int {
	room, ok := s.room.Get()
	if !ok {
		return 0
	}
	for _, c := range room {
		s.deck.AddToEnd(c)
	}
	s.room = None[[]card.Card]()
	s.logger.Debug("room returned", "cards", len(room), "deck", s.deck.Len())
	return len(room)
}

// Cards returns every card the session holds, wherever it is.
func (s *Session) Cards() []card.Card {
	all := s.deck.Cards()
	if room, ok := s.room.Get(); ok {
		all = append(all, room...)
	}
	if w, ok := s.weapon.Get(); ok {
		all = append(all, w)
	}
	all = append(all, s.discard...)
	if e, ok := s.lastEnemy.Get(); ok {
		all = append(all, e)
	}
	return all
}

// CheckIntegrity verifies that no card was duplicated or lost since the
// session was created.
func (s *Session) CheckIntegrity() error {
	all := s.Cards()
	if len(all) != s.total {
		return fmt.Errorf("%w: holding %d cards, started with %d", ErrIntegrity, len(all), s.total)
	}
	seen := make(map[card.Card]bool, len(all))
	for _, c := range all {
		if seen[c] {
			return fmt.Errorf("%w: duplicate %s", ErrIntegrity, c)
		}
		seen[c] = true
	}
	return nil
}
