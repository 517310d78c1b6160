package entities

import (
	"time"

	"github.com/google/uuid"
)

// AddressType distinguishes buyer delivery addresses from the seller's
// single pickup address.
type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeStore AddressType = "STORE"
)

// AddressRecord is the backend's address shape. The primary flag only
// carries meaning for HOME records; a seller has at most one STORE record
// and it is edit-only once created.
type AddressRecord struct {
	ID           uuid.UUID   `json:"id"`
	ContactName  string      `json:"contactName"`
	ContactPhone string      `json:"contactPhone"`
	FullAddress  string      `json:"fullAddress"`
	ProvinceID   int         `json:"provinceId"`
	ProvinceName string      `json:"provinceName"`
	DistrictID   int         `json:"districtId"`
	DistrictName string      `json:"districtName"`
	WardCode     string      `json:"wardCode"`
	WardName     string      `json:"wardName"`
	Type         AddressType `json:"typeAddress"`
	IsPrimary    bool        `json:"isPrimary"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// AddressDraft is the flat form-field shape the UI edits. Display names are
// echoed alongside the ids so a stale id can still be resolved by name.
type AddressDraft struct {
	RecipientName string `json:"recipientName"`
	PhoneNumber   string `json:"phoneNumber"`
	ProvinceID    int    `json:"provinceId"`
	DistrictID    int    `json:"districtId"`
	WardID        string `json:"wardId"`
	StreetAddress string `json:"streetAddress"`
	IsPrimary     bool   `json:"isPrimary"`
	ProvinceName  string `json:"provinceName"`
	DistrictName  string `json:"districtName"`
	WardName      string `json:"wardName"`
}

// AddressPayload is the wire shape for create/update requests.
type AddressPayload struct {
	ContactName  string      `json:"contactName"`
	ContactPhone string      `json:"contactPhone"`
	FullAddress  string      `json:"fullAddress"`
	ProvinceID   int         `json:"provinceId"`
	DistrictID   int         `json:"districtId"`
	WardCode     string      `json:"wardCode"`
	Type         AddressType `json:"typeAddress"`
	IsPrimary    bool        `json:"isPrimary"`
}
