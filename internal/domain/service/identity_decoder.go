package service

import "schoolhub/internal/domain/entity"

// IdentityDecoder derives the birth date and gender encoded in an identity number.
type IdentityDecoder interface {
	Decode(idNumber string) entity.IdentityInfo
}
