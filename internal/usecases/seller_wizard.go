package usecases

import (
	"context"
	"net/mail"
	"strings"
	"sync"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/internal/domain/gateways"
)

// uploadFolders maps each slot to the backend folder hint.
var uploadFolders = map[entities.UploadSlot]string{
	entities.SlotIDFront: "kyc",
	entities.SlotIDBack:  "kyc",
	entities.SlotSelfie:  "kyc",
	entities.SlotLogo:    "shop",
	entities.SlotBanner:  "shop",
}

type uploadState struct {
	url     string
	loading bool
}

// SellerWizard drives the three-step seller registration: shop info →
// address → KYC. Backward navigation is free; forward transitions are gated.
type SellerWizard struct {
	regGw gateways.RegistrationGateway
	upGw  gateways.UploadGateway

	maxImageBytes  int64
	maxBannerBytes int64

	mu             sync.Mutex
	step           entities.WizardStep
	draft          entities.RegistrationDraft
	editing        bool
	shopNameState  entities.AvailabilityState
	nationalIDState entities.AvailabilityState
	uploads        map[entities.UploadSlot]*uploadState
	result         *entities.SellerRegistration
}

// NewSellerWizard creates a new wizard
func NewSellerWizard(regGw gateways.RegistrationGateway, upGw gateways.UploadGateway, maxImageBytes, maxBannerBytes int64) *SellerWizard {
	if maxImageBytes <= 0 {
		maxImageBytes = 5 * 1024 * 1024
	}
	if maxBannerBytes <= 0 {
		maxBannerBytes = 10 * 1024 * 1024
	}
	return &SellerWizard{
		regGw:           regGw,
		upGw:            upGw,
		maxImageBytes:   maxImageBytes,
		maxBannerBytes:  maxBannerBytes,
		step:            entities.StepShopInfo,
		shopNameState:   entities.AvailabilityUnknown,
		nationalIDState: entities.AvailabilityUnknown,
		uploads:         map[entities.UploadSlot]*uploadState{},
	}
}

// BeginEdit loads a rejected application for resubmission. Everything is
// prefilled except the KYC images and the raw national id, which the backend
// omits from the rejected-status payload: the user re-supplies sensitive
// data even when unchanged.
func (w *SellerWizard) BeginEdit(ctx context.Context) error {
	reg, err := w.regGw.Status(ctx)
	if err != nil {
		return err
	}
	if reg.Status != entities.RegistrationStatusRejected {
		return domainerrors.BadRequest("chỉ hồ sơ bị từ chối mới có thể chỉnh sửa")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.editing = true
	w.step = entities.StepShopInfo
	w.shopNameState = entities.AvailabilityUnknown
	w.nationalIDState = entities.AvailabilityUnknown
	w.uploads = map[entities.UploadSlot]*uploadState{}
	w.draft = entities.RegistrationDraft{
		ShopName:      reg.ShopName,
		Description:   reg.Description,
		Phone:         reg.Phone,
		Email:         reg.Email,
		LogoURL:       reg.LogoURL.String,
		BannerURL:     reg.BannerURL.String,
		StreetAddress: reg.StreetAddress,
		ProvinceID:    reg.ProvinceID,
		ProvinceName:  reg.ProvinceName,
		DistrictID:    reg.DistrictID,
		DistrictName:  reg.DistrictName,
		WardCode:      reg.WardCode,
		WardName:      reg.WardName,
		IDFullName:    reg.IDFullName,
		// IDNumber and the three KYC image URLs stay empty on purpose.
	}
	if w.draft.LogoURL != "" {
		w.uploads[entities.SlotLogo] = &uploadState{url: w.draft.LogoURL}
	}
	if w.draft.BannerURL != "" {
		w.uploads[entities.SlotBanner] = &uploadState{url: w.draft.BannerURL}
	}
	return nil
}

// Draft returns a copy of the working draft.
func (w *SellerWizard) Draft() entities.RegistrationDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Step returns the current wizard step.
func (w *SellerWizard) Step() entities.WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// UpdateShopInfo replaces the step-1 fields; editing the shop name resets
// its availability state.
func (w *SellerWizard) UpdateShopInfo(shopName, description, phone, email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if shopName != w.draft.ShopName {
		w.shopNameState = entities.AvailabilityUnknown
	}
	w.draft.ShopName = shopName
	w.draft.Description = description
	w.draft.Phone = phone
	w.draft.Email = email
}

// UpdateAddress replaces the step-2 fields.
func (w *SellerWizard) UpdateAddress(street string, provinceID int, provinceName string, districtID int, districtName, wardCode, wardName string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.StreetAddress = street
	w.draft.ProvinceID = provinceID
	w.draft.ProvinceName = provinceName
	w.draft.DistrictID = districtID
	w.draft.DistrictName = districtName
	w.draft.WardCode = wardCode
	w.draft.WardName = wardName
}

// UpdateKYC replaces the step-3 text fields; editing the id number resets
// its availability state.
func (w *SellerWizard) UpdateKYC(idNumber, idFullName string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if idNumber != w.draft.IDNumber {
		w.nationalIDState = entities.AvailabilityUnknown
	}
	w.draft.IDNumber = idNumber
	w.draft.IDFullName = idFullName
}

// BlurShopName runs the async shop-name uniqueness check; blur-triggered,
// which is the debounce.
func (w *SellerWizard) BlurShopName(ctx context.Context) error {
	w.mu.Lock()
	name := strings.TrimSpace(w.draft.ShopName)
	editing := w.editing
	if name == "" {
		w.shopNameState = entities.AvailabilityUnknown
		w.mu.Unlock()
		return nil
	}
	w.shopNameState = entities.AvailabilityChecking
	w.mu.Unlock()

	available, err := w.regGw.CheckShopName(ctx, name, editing)

	w.mu.Lock()
	defer w.mu.Unlock()
	if strings.TrimSpace(w.draft.ShopName) != name {
		return nil // field changed while the check was in flight
	}
	if err != nil {
		w.shopNameState = entities.AvailabilityUnknown
		return err
	}
	if available {
		w.shopNameState = entities.AvailabilityAvailable
		return nil
	}
	w.shopNameState = entities.AvailabilityTaken
	return domainerrors.NewAppError(409, "tên shop đã tồn tại", domainerrors.ErrShopNameTaken)
}

// BlurNationalID validates the id format locally and then runs the async
// uniqueness check. A format failure never reaches the network.
func (w *SellerWizard) BlurNationalID(ctx context.Context) error {
	w.mu.Lock()
	idNumber := strings.TrimSpace(w.draft.IDNumber)
	editing := w.editing
	if idNumber == "" {
		w.nationalIDState = entities.AvailabilityUnknown
		w.mu.Unlock()
		return nil
	}
	if !ValidateNationalID(idNumber) {
		w.nationalIDState = entities.AvailabilityUnknown
		w.mu.Unlock()
		return domainerrors.BadRequest("số CCCD/CMND phải gồm 9 hoặc 12 chữ số")
	}
	w.nationalIDState = entities.AvailabilityChecking
	w.mu.Unlock()

	available, err := w.regGw.CheckNationalID(ctx, idNumber, editing)

	w.mu.Lock()
	defer w.mu.Unlock()
	if strings.TrimSpace(w.draft.IDNumber) != idNumber {
		return nil
	}
	if err != nil {
		w.nationalIDState = entities.AvailabilityUnknown
		return err
	}
	if available {
		w.nationalIDState = entities.AvailabilityAvailable
		return nil
	}
	w.nationalIDState = entities.AvailabilityTaken
	return domainerrors.NewAppError(409, "số CCCD/CMND đã được đăng ký", domainerrors.ErrNationalIDTaken)
}

// ShopNameState returns the tri-state indicator for the shop-name check.
func (w *SellerWizard) ShopNameState() entities.AvailabilityState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shopNameState
}

// NationalIDState returns the tri-state indicator for the id check.
func (w *SellerWizard) NationalIDState() entities.AvailabilityState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nationalIDState
}

// Next advances one step when the current step's guard passes.
func (w *SellerWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case entities.StepShopInfo:
		if err := w.validateShopInfoLocked(); err != nil {
			return err
		}
		w.step = entities.StepAddress
	case entities.StepAddress:
		if err := w.validateAddressLocked(); err != nil {
			return err
		}
		w.step = entities.StepKYC
	default:
		return domainerrors.BadRequest("không thể chuyển bước")
	}
	return nil
}

// Back navigates one step back; always allowed before submission.
func (w *SellerWizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > entities.StepShopInfo && w.step <= entities.StepKYC {
		w.step--
	}
}

// Upload validates and uploads one image slot. Each slot has its own
// loading flag and can be removed independently.
func (w *SellerWizard) Upload(ctx context.Context, slot entities.UploadSlot, filename, contentType string, data []byte) (string, error) {
	folder, ok := uploadFolders[slot]
	if !ok {
		return "", domainerrors.BadRequest("ô tải lên không hợp lệ")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.BadRequest("chỉ chấp nhận tệp hình ảnh")
	}
	limit := w.maxImageBytes
	if slot == entities.SlotBanner {
		limit = w.maxBannerBytes
	}
	if int64(len(data)) > limit {
		return "", domainerrors.BadRequest("kích thước tệp vượt quá giới hạn cho phép")
	}

	w.mu.Lock()
	state, exists := w.uploads[slot]
	if exists && state.loading {
		w.mu.Unlock()
		return "", domainerrors.BadRequest("đang tải lên, vui lòng đợi")
	}
	state = &uploadState{loading: true}
	w.uploads[slot] = state
	w.mu.Unlock()

	result, err := w.upGw.UploadImage(ctx, filename, contentType, data, folder)

	w.mu.Lock()
	defer w.mu.Unlock()
	state.loading = false
	if err != nil {
		return "", err
	}
	state.url = result.URL
	w.applySlotLocked(slot, result.URL)
	return result.URL, nil
}

// RemoveUpload clears one slot.
func (w *SellerWizard) RemoveUpload(slot entities.UploadSlot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.uploads, slot)
	w.applySlotLocked(slot, "")
}

// UploadURL returns the uploaded URL for a slot, empty when unset.
func (w *SellerWizard) UploadURL(slot entities.UploadSlot) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if state, ok := w.uploads[slot]; ok {
		return state.url
	}
	return ""
}

// Uploading reports whether the slot has an upload in flight.
func (w *SellerWizard) Uploading(slot entities.UploadSlot) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if state, ok := w.uploads[slot]; ok {
		return state.loading
	}
	return false
}

// Submit runs the step-3 guard and sends the application: a new submission
// creates a pending record, an edit updates the rejected one.
func (w *SellerWizard) Submit(ctx context.Context) (*entities.SellerRegistration, error) {
	w.mu.Lock()
	if w.step != entities.StepKYC {
		w.mu.Unlock()
		return nil, domainerrors.BadRequest("vui lòng hoàn thành các bước trước")
	}
	if err := w.validateKYCLocked(); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	input := &entities.SubmitRegistrationInput{
		ShopName:      strings.TrimSpace(w.draft.ShopName),
		Description:   w.draft.Description,
		Phone:         strings.TrimSpace(w.draft.Phone),
		Email:         strings.TrimSpace(w.draft.Email),
		LogoURL:       w.draft.LogoURL,
		BannerURL:     w.draft.BannerURL,
		StreetAddress: strings.TrimSpace(w.draft.StreetAddress),
		ProvinceID:    w.draft.ProvinceID,
		DistrictID:    w.draft.DistrictID,
		WardCode:      w.draft.WardCode,
		IDNumber:      strings.TrimSpace(w.draft.IDNumber),
		IDFullName:    strings.TrimSpace(w.draft.IDFullName),
		IDFrontURL:    w.draft.IDFrontURL,
		IDBackURL:     w.draft.IDBackURL,
		SelfieURL:     w.draft.SelfieURL,
	}
	editing := w.editing
	w.step = entities.StepSubmitting
	w.mu.Unlock()

	var (
		reg *entities.SellerRegistration
		err error
	)
	if editing {
		reg, err = w.regGw.UpdateRejected(ctx, input)
	} else {
		reg, err = w.regGw.Submit(ctx, input)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.step = entities.StepKYC
		return nil, err
	}
	w.step = entities.StepSubmitted
	w.result = reg
	return reg, nil
}

func (w *SellerWizard) applySlotLocked(slot entities.UploadSlot, url string) {
	switch slot {
	case entities.SlotIDFront:
		w.draft.IDFrontURL = url
	case entities.SlotIDBack:
		w.draft.IDBackURL = url
	case entities.SlotSelfie:
		w.draft.SelfieURL = url
	case entities.SlotLogo:
		w.draft.LogoURL = url
	case entities.SlotBanner:
		w.draft.BannerURL = url
	}
}

func (w *SellerWizard) validateShopInfoLocked() error {
	if strings.TrimSpace(w.draft.ShopName) == "" {
		return domainerrors.BadRequest("vui lòng nhập tên shop")
	}
	if !ValidatePhone(w.draft.Phone) {
		return domainerrors.BadRequest("số điện thoại không hợp lệ")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(w.draft.Email)); err != nil {
		return domainerrors.BadRequest("email không hợp lệ")
	}
	switch w.shopNameState {
	case entities.AvailabilityAvailable:
		return nil
	case entities.AvailabilityTaken:
		return domainerrors.NewAppError(409, "tên shop đã tồn tại", domainerrors.ErrShopNameTaken)
	default:
		// Checking or Unknown: a pending or failed check blocks advance.
		return domainerrors.NewAppError(400, "đang kiểm tra tên shop, vui lòng đợi", domainerrors.ErrCheckPending)
	}
}

func (w *SellerWizard) validateAddressLocked() error {
	if w.draft.ProvinceID <= 0 || w.draft.DistrictID <= 0 || w.draft.WardCode == "" {
		return domainerrors.BadRequest("vui lòng chọn đầy đủ tỉnh/thành, quận/huyện, phường/xã")
	}
	if strings.TrimSpace(w.draft.StreetAddress) == "" {
		return domainerrors.BadRequest("vui lòng nhập địa chỉ cụ thể")
	}
	return nil
}

func (w *SellerWizard) validateKYCLocked() error {
	if !ValidateNationalID(w.draft.IDNumber) {
		return domainerrors.BadRequest("số CCCD/CMND phải gồm 9 hoặc 12 chữ số")
	}
	if strings.TrimSpace(w.draft.IDFullName) == "" {
		return domainerrors.BadRequest("vui lòng nhập họ tên trên giấy tờ")
	}
	switch w.nationalIDState {
	case entities.AvailabilityAvailable:
	case entities.AvailabilityTaken:
		return domainerrors.NewAppError(409, "số CCCD/CMND đã được đăng ký", domainerrors.ErrNationalIDTaken)
	default:
		return domainerrors.NewAppError(400, "đang kiểm tra số CCCD/CMND, vui lòng đợi", domainerrors.ErrCheckPending)
	}
	if w.draft.IDFrontURL == "" || w.draft.IDBackURL == "" {
		return domainerrors.BadRequest("vui lòng tải lên ảnh hai mặt giấy tờ")
	}
	// Selfie is optional.
	return nil
}
