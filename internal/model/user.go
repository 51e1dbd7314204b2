package model

import "time"

// User is a registered recipient. The registration subsystem owns this
// record; the delivery engine only reads it.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	PushToken     *string   `json:"pushToken,omitempty"`
	Parish        Parish    `json:"parish"`
	EmailEnabled  bool      `json:"emailEnabled"`
	SMSEnabled    bool      `json:"smsEnabled"`
	PushEnabled   bool      `json:"pushEnabled"`
	EmergencyOnly bool      `json:"emergencyOnly"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OptedChannels returns the channels the user has opted into, restricted
// to channels with a usable address.
func (u User) OptedChannels() []Channel {
	var out []Channel
	if u.EmailEnabled && u.Email != "" {
		out = append(out, ChannelEmail)
	}
	if u.SMSEnabled && u.Phone != nil && *u.Phone != "" {
		out = append(out, ChannelSMS)
	}
	if u.PushEnabled && u.PushToken != nil && *u.PushToken != "" {
		out = append(out, ChannelPush)
	}
	return out
}

// AddressFor returns the delivery address for one of the user's channels.
func (u User) AddressFor(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return u.Email
	case ChannelSMS:
		if u.Phone != nil {
			return *u.Phone
		}
	case ChannelPush:
		if u.PushToken != nil {
			return *u.PushToken
		}
	}
	return ""
}
