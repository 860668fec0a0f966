package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated   EventType = "game_created"
	EventGameStarted   EventType = "game_started"
	EventCellsRevealed EventType = "cells_revealed"
	EventFlagToggled   EventType = "flag_toggled"
	EventGameWon       EventType = "game_won"
	EventGameLost      EventType = "game_lost"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any // Type-specific data
}

// Observer receives engine events. Implementations must not call back into
// the controller for the same board while handling an event.
type Observer interface {
	OnEvent(event Event)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(event Event)

// OnEvent calls f(event)
func (f ObserverFunc) OnEvent(event Event) {
	f(event)
}

// GameCreatedPayload contains data for game created events
type GameCreatedPayload struct {
	Config GameConfig
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Origin      Position
	MinesPlaced int
}

// CellsRevealedPayload contains data for cells revealed events
type CellsRevealedPayload struct {
	Positions     []Position
	RevealedCount int
}

// FlagToggledPayload contains data for flag toggled events
type FlagToggledPayload struct {
	Position       Position
	Flagged        bool
	MinesRemaining int
}

// GameWonPayload contains data for game won events
type GameWonPayload struct {
	AutoFlagged  []Position
	FlaggedCount int
	Duration     time.Duration
}

// GameLostPayload contains data for game lost events
type GameLostPayload struct {
	Detonated  Position
	Mines      []Position
	Misflagged []Position
	Duration   time.Duration
}
