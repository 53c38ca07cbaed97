package event

// UserVerifiedDestination is the topic/subject for user verification events.
const UserVerifiedDestination string = "user_verified"

// UserVerifiedConsumerNotification is the consumer group used by the
// notification module.
const UserVerifiedConsumerNotification string = "user_verified_notification"

// UserVerifiedMessage is published after a signup code is verified and the
// account is created.
type UserVerifiedMessage struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
