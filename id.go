package mediator

import (
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
)

// IDGenerator produces subscriber identifiers.
// Identifiers are random and unique with overwhelming probability; collisions are not detected.
type IDGenerator func() string

// UUID returns a random RFC 4122 identifier such as "9c5b94b1-35ad-49bb-b118-8e8fc24abf80".
func UUID() string {
	return uuid.New().String()
}

// ShortID returns a random base57 identifier, shorter to type than UUID.
func ShortID() string {
	return shortuuid.New()
}

// ID formats accepted by Config.IDFormat.
const (
	IDFormatUUID  = "uuid"
	IDFormatShort = "short"
)

func idGeneratorFor(format string) (IDGenerator, error) {
	switch format {
	case "", IDFormatUUID:
		return UUID, nil
	case IDFormatShort:
		return ShortID, nil
	default:
		return nil, ErrInvalidIDFormat
	}
}
