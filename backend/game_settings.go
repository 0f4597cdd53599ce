package main

type GameSettings struct {
	BoardSize int  `json:"board_size"`
	StopOnWin bool `json:"stop_on_win"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize: 15,
		StopOnWin: false,
	}
}
