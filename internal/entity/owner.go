package entity

import "fmt"

// Owner - one of the two players.
type Owner uint8

const (
	OwnerA Owner = iota + 1
	OwnerB
)

const (
	tagPlayer1 = "PLAYER1"
	tagPlayer2 = "PLAYER2"
)

// ParseOwner - converts a persisted owner tag back to an Owner.
func ParseOwner(tag string) (Owner, error) {
	switch tag {
	case tagPlayer1:
		return OwnerA, nil
	case tagPlayer2:
		return OwnerB, nil
	default:
		return 0, fmt.Errorf("unknown owner tag %q", tag)
	}
}

func (that Owner) IsValid() bool {
	return that == OwnerA || that == OwnerB
}

// Opponent - returns the other player.
func (that Owner) Opponent() Owner {
	if that == OwnerA {
		return OwnerB
	}
	return OwnerA
}

// Tag - the value written to storage.
func (that Owner) Tag() string {
	if that == OwnerA {
		return tagPlayer1
	}
	return tagPlayer2
}

// Symbol - the mark drawn on the board.
func (that Owner) Symbol() rune {
	if that == OwnerA {
		return 'X'
	}
	return 'O'
}

func (that Owner) String() string {
	switch that {
	case OwnerA:
		return "Player 1 (X)"
	case OwnerB:
		return "Player 2 (O)"
	default:
		return fmt.Sprintf("Owner(%d)", uint8(that))
	}
}
