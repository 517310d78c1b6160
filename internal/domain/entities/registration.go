package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RegistrationStatus represents the review state of a seller application.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "PENDING"
	RegistrationStatusApproved RegistrationStatus = "APPROVED"
	RegistrationStatusRejected RegistrationStatus = "REJECTED"
)

// AvailabilityState is the tri-state result of an async uniqueness check.
type AvailabilityState string

const (
	AvailabilityUnknown   AvailabilityState = "UNKNOWN"
	AvailabilityChecking  AvailabilityState = "CHECKING"
	AvailabilityAvailable AvailabilityState = "AVAILABLE"
	AvailabilityTaken     AvailabilityState = "TAKEN"
)

// WizardStep is the linear seller-registration progression.
type WizardStep int

const (
	StepShopInfo WizardStep = iota
	StepAddress
	StepKYC
	StepSubmitting
	StepSubmitted
)

// UploadSlot names the independent image upload slots of the wizard.
type UploadSlot string

const (
	SlotIDFront UploadSlot = "id_front"
	SlotIDBack  UploadSlot = "id_back"
	SlotSelfie  UploadSlot = "selfie"
	SlotLogo    UploadSlot = "logo"
	SlotBanner  UploadSlot = "banner"
)

// SellerRegistration is the backend's application record. For rejected
// applications the backend deliberately omits the national id number and the
// KYC image URLs, so those fields are nullable here.
type SellerRegistration struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	ShopName    string    `json:"shopName"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	LogoURL     null.String `json:"logoUrl,omitempty"`
	BannerURL   null.String `json:"bannerUrl,omitempty"`

	ContactName   string `json:"contactName"`
	StreetAddress string `json:"streetAddress"`
	ProvinceID    int    `json:"provinceId"`
	ProvinceName  string `json:"provinceName"`
	DistrictID    int    `json:"districtId"`
	DistrictName  string `json:"districtName"`
	WardCode      string `json:"wardCode"`
	WardName      string `json:"wardName"`

	IDNumber   null.String `json:"idNumber,omitempty"`
	IDFullName string      `json:"idFullName"`
	IDFrontURL null.String `json:"idFrontUrl,omitempty"`
	IDBackURL  null.String `json:"idBackUrl,omitempty"`
	SelfieURL  null.String `json:"selfieUrl,omitempty"`

	Status       RegistrationStatus `json:"status"`
	RejectReason null.String        `json:"rejectReason,omitempty"`
	SubmittedAt  time.Time          `json:"submittedAt"`
	ReviewedAt   null.Time          `json:"reviewedAt,omitempty"`
}

// RegistrationDraft is the wizard's working copy, built across three steps.
type RegistrationDraft struct {
	ShopName    string `json:"shopName"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LogoURL     string `json:"logoUrl,omitempty"`
	BannerURL   string `json:"bannerUrl,omitempty"`

	StreetAddress string `json:"streetAddress"`
	ProvinceID    int    `json:"provinceId"`
	ProvinceName  string `json:"provinceName"`
	DistrictID    int    `json:"districtId"`
	DistrictName  string `json:"districtName"`
	WardCode      string `json:"wardCode"`
	WardName      string `json:"wardName"`

	IDNumber   string `json:"idNumber"`
	IDFullName string `json:"idFullName"`
	IDFrontURL string `json:"idFrontUrl"`
	IDBackURL  string `json:"idBackUrl"`
	SelfieURL  string `json:"selfieUrl,omitempty"`
}

// SubmitRegistrationInput is the wire shape for submit and update-rejected.
type SubmitRegistrationInput struct {
	ShopName    string `json:"shopName" binding:"required,min=2,max=255"`
	Description string `json:"description"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	LogoURL     string `json:"logoUrl,omitempty"`
	BannerURL   string `json:"bannerUrl,omitempty"`

	StreetAddress string `json:"streetAddress" binding:"required"`
	ProvinceID    int    `json:"provinceId" binding:"required"`
	DistrictID    int    `json:"districtId" binding:"required"`
	WardCode      string `json:"wardCode" binding:"required"`

	IDNumber   string `json:"idNumber" binding:"required"`
	IDFullName string `json:"idFullName" binding:"required"`
	IDFrontURL string `json:"idFrontUrl" binding:"required"`
	IDBackURL  string `json:"idBackUrl" binding:"required"`
	SelfieURL  string `json:"selfieUrl,omitempty"`
}
