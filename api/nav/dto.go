package navapi

// Coordinate is a (row, col) cell reference.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LaunchRequest asks for a new navigation run.
type LaunchRequest struct {
	Map      string     `json:"map" binding:"required"`
	Init     Coordinate `json:"init"`
	Goal     Coordinate `json:"goal"`
	Actuator bool       `json:"actuator"`
}

// LaunchResponse carries the ID of an accepted run.
type LaunchResponse struct {
	ID string `json:"id"`
}
