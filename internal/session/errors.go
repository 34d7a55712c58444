package session

import "errors"

// Every failure the service can hand back is one of these sentinels
// (or game.ErrInsufficientPlayers from the assignment engine). The
// HTTP layer matches with errors.Is and maps each to a specific
// user-facing message.
var (
	// ErrGameNotFound indicates no game exists for the id or join code.
	ErrGameNotFound = errors.New("game not found")
	// ErrMembershipNotFound indicates the user has no active membership
	// in the game.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrAssignmentNotFound indicates no pending assignment exists.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrDuplicateMembership indicates the user already holds a
	// non-left membership in the game.
	ErrDuplicateMembership = errors.New("already in this game")
	// ErrInvalidTransition indicates a backward or repeated game status
	// change was attempted.
	ErrInvalidTransition = errors.New("invalid game status transition")
	// ErrAlreadyResolved indicates the assignment was resolved by a
	// concurrent elimination, or the victim is already out.
	ErrAlreadyResolved = errors.New("assignment already resolved")
	// ErrAssignmentMismatch indicates the killer/victim pair does not
	// match the referenced assignment.
	ErrAssignmentMismatch = errors.New("assignment does not match killer and victim")
	// ErrCodeSpaceExhausted indicates the bounded retry loop could not
	// allocate a unique join code.
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique join code")
	// ErrNotHost indicates a host-only action was attempted by a player.
	ErrNotHost = errors.New("only the host can perform this action")
	// ErrHostCannotLeave indicates the host tried to leave their own game.
	ErrHostCannotLeave = errors.New("host cannot leave the game")
	// ErrGameAlreadyStarted indicates a lobby-only action on an active game.
	ErrGameAlreadyStarted = errors.New("game already started")
	// ErrGameNotStarted indicates an in-game action on a lobby game.
	ErrGameNotStarted = errors.New("game has not started")
	// ErrGameEnded indicates an action on an ended game.
	ErrGameEnded = errors.New("game has ended")
)
