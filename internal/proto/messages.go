package proto

// User is the public view of an account. It never carries secrets.
type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

type Todo struct {
	Id          string `json:"id"`
	CreatorId   string `json:"creator_id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completed_at"`
}

type Empty struct{}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by every call that starts a session.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type MeResponse struct {
	User *User `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateTodoRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed,omitempty"`
}

type TodoResponse struct {
	Todo *Todo `json:"todo"`
}

type ListTodosResponse struct {
	Todos []*Todo `json:"todos"`
}

type GetTodoRequest struct {
	Id string `json:"id"`
}

// UpdateTodoRequest patches a todo. Nil fields are left out of the patch;
// note that a patch without Completed=true leaves the todo not completed.
type UpdateTodoRequest struct {
	Id        string  `json:"id"`
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type DeleteTodoRequest struct {
	Id string `json:"id"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
