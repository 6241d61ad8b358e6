package space_state

// SetStateRequest тело запроса на прямую установку состояния
type SetStateRequest struct {
	State string `json:"state"`
}
