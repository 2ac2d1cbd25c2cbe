package entity

import "time"

// Subscriber is a newsletter subscription. Email is unique and stored normalised.
type Subscriber struct {
	ID           int64
	Email        string
	SubscribedAt time.Time
}
