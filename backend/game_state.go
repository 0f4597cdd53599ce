package main

type PlayerColor int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

func (p PlayerColor) String() string {
	if p == PlayerWhite {
		return "White"
	}
	return "Black"
}

func otherPlayer(player PlayerColor) PlayerColor {
	switch player {
	case PlayerBlack:
		return PlayerWhite
	default:
		return PlayerBlack
	}
}
