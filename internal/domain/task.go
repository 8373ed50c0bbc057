package domain

// Task statuses. Any transition between them is accepted; no ordering is
// enforced.
const (
	TaskStatusOpen       = "OPEN"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// ClientTask is a follow-up item attached to a client.
type ClientTask struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
}
