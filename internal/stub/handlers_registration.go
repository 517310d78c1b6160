package stub

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/utils"
)

// SubmitRegistration handles POST /api/v1/seller/registration
func (s *Store) SubmitRegistration(c *gin.Context) {
	userID := currentUserID(c)
	var in entities.SubmitRegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.registrations[userID]; ok && existing.Status != entities.RegistrationStatusRejected {
		respondError(c, http.StatusConflict, "bạn đã có đơn đăng ký")
		return
	}
	if s.shopNameTaken(in.ShopName, userID) {
		respondError(c, http.StatusConflict, "tên shop đã tồn tại")
		return
	}
	if s.nationalIDTaken(in.IDNumber, userID) {
		respondError(c, http.StatusConflict, "số CCCD/CMND đã được đăng ký")
		return
	}

	reg := s.registrationFromInput(uuid.New(), userID, &in)
	s.registrations[userID] = reg
	respond(c, http.StatusCreated, presentRegistration(reg))
}

// UpdateRejectedRegistration handles PUT /api/v1/seller/registration. Only
// rejected applications may be resubmitted.
func (s *Store) UpdateRejectedRegistration(c *gin.Context) {
	userID := currentUserID(c)
	var in entities.SubmitRegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.registrations[userID]
	if !ok {
		respondError(c, http.StatusNotFound, "registration not found")
		return
	}
	if existing.Status != entities.RegistrationStatusRejected {
		respondError(c, http.StatusBadRequest, "only rejected applications can be resubmitted")
		return
	}
	if s.shopNameTaken(in.ShopName, userID) {
		respondError(c, http.StatusConflict, "tên shop đã tồn tại")
		return
	}
	if s.nationalIDTaken(in.IDNumber, userID) {
		respondError(c, http.StatusConflict, "số CCCD/CMND đã được đăng ký")
		return
	}

	reg := s.registrationFromInput(existing.ID, userID, &in)
	s.registrations[userID] = reg
	respond(c, http.StatusOK, presentRegistration(reg))
}

// CancelRejectedRegistration handles DELETE /api/v1/seller/registration
func (s *Store) CancelRejectedRegistration(c *gin.Context) {
	userID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.registrations[userID]
	if !ok {
		respondError(c, http.StatusNotFound, "registration not found")
		return
	}
	if existing.Status != entities.RegistrationStatusRejected {
		respondError(c, http.StatusBadRequest, "only rejected applications can be cancelled")
		return
	}
	delete(s.registrations, userID)
	c.Status(http.StatusNoContent)
}

// RegistrationStatus handles GET /api/v1/seller/registration
func (s *Store) RegistrationStatus(c *gin.Context) {
	userID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrations[userID]
	if !ok {
		respondError(c, http.StatusNotFound, "registration not found")
		return
	}
	respond(c, http.StatusOK, presentRegistration(reg))
}

// CheckShopName handles GET /api/v1/seller/registration/check-shop-name
func (s *Store) CheckShopName(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	exclude := uuid.Nil
	if c.Query("excludeSelf") == "true" {
		exclude = currentUserID(c)
	}

	s.mu.Lock()
	taken := s.shopNameTaken(name, exclude)
	s.mu.Unlock()

	respond(c, http.StatusOK, gin.H{"available": !taken})
}

// CheckNationalID handles GET /api/v1/seller/registration/check-national-id
func (s *Store) CheckNationalID(c *gin.Context) {
	idNumber := strings.TrimSpace(c.Query("idNumber"))
	if idNumber == "" {
		respondError(c, http.StatusBadRequest, "idNumber is required")
		return
	}
	exclude := uuid.Nil
	if c.Query("excludeSelf") == "true" {
		exclude = currentUserID(c)
	}

	s.mu.Lock()
	taken := s.nationalIDTaken(idNumber, exclude)
	s.mu.Unlock()

	respond(c, http.StatusOK, gin.H{"available": !taken})
}

// ListRegistrations handles GET /api/v1/admin/registrations
func (s *Store) ListRegistrations(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	params := utils.GetPaginationParams(page, limit)

	s.mu.Lock()
	all := make([]*entities.SellerRegistration, 0, len(s.registrations))
	for _, reg := range s.registrations {
		if reg.Status != entities.RegistrationStatusPending {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(reg.ShopName), search) {
			continue
		}
		all = append(all, reg)
	}
	s.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].SubmittedAt.After(all[j].SubmittedAt)
	})

	total := int64(len(all))
	offset := params.CalculateOffset()
	if offset > len(all) {
		offset = len(all)
	}
	end := len(all)
	if params.Limit > 0 && offset+params.Limit < end {
		end = offset + params.Limit
	}

	items := make([]*entities.SellerRegistration, 0, end-offset)
	for _, reg := range all[offset:end] {
		items = append(items, adminView(reg))
	}

	respond(c, http.StatusOK, gin.H{
		"items": items,
		"meta":  utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// RegistrationDetail handles GET /api/v1/admin/registrations/:id
func (s *Store) RegistrationDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid registration id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	reg := s.registrationByID(id)
	if reg == nil {
		respondError(c, http.StatusNotFound, "registration not found")
		return
	}
	respond(c, http.StatusOK, adminView(reg))
}

// ApproveRegistration handles POST /api/v1/admin/registrations/:id/approve.
// Approval promotes the applicant to SELLER and materialises the shop's
// STORE address from the application.
func (s *Store) ApproveRegistration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid registration id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.registrationByID(id)
	if reg == nil {
		respondError(c, http.StatusNotFound, "registration not found")
		return
	}
	if reg.Status != entities.RegistrationStatusPending {
		respondError(c, http.StatusBadRequest, "registration is not pending")
		return
	}

	reg.Status = entities.RegistrationStatusApproved
	reg.ReviewedAt = null.TimeFrom(time.Now())
	if user := s.userByID(reg.UserID); user != nil {
		user.Role = entities.RoleSeller
	}
	s.storeAddressFor(reg.UserID, reg)

	respond(c, http.StatusOK, adminView(reg))
}

// RejectRegistration handles POST /api/v1/admin/registrations/:id/reject
func (s *Store) RejectRegistration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid registration id")
		return
	}
	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Reason) == "" {
		respondError(c, http.StatusBadRequest, "reason is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.registrationByID(id)
	if reg == nil {
		respondError(c, http.StatusNotFound, "registration not found")
		return
	}
	if reg.Status != entities.RegistrationStatusPending {
		respondError(c, http.StatusBadRequest, "registration is not pending")
		return
	}

	reg.Status = entities.RegistrationStatusRejected
	reg.RejectReason = null.StringFrom(strings.TrimSpace(body.Reason))
	reg.ReviewedAt = null.TimeFrom(time.Now())

	respond(c, http.StatusOK, adminView(reg))
}

func (s *Store) registrationByID(id uuid.UUID) *entities.SellerRegistration {
	for _, reg := range s.registrations {
		if reg.ID == id {
			return reg
		}
	}
	return nil
}

func (s *Store) registrationFromInput(id, userID uuid.UUID, in *entities.SubmitRegistrationInput) *entities.SellerRegistration {
	return &entities.SellerRegistration{
		ID:          id,
		UserID:      userID,
		ShopName:    strings.TrimSpace(in.ShopName),
		Description: in.Description,
		Phone:       in.Phone,
		Email:       in.Email,
		LogoURL:     nullableString(in.LogoURL),
		BannerURL:   nullableString(in.BannerURL),

		StreetAddress: in.StreetAddress,
		ProvinceID:    in.ProvinceID,
		ProvinceName:  s.provinceName(in.ProvinceID),
		DistrictID:    in.DistrictID,
		DistrictName:  s.districtName(in.ProvinceID, in.DistrictID),
		WardCode:      in.WardCode,
		WardName:      s.wardName(in.DistrictID, in.WardCode),

		IDNumber:   null.StringFrom(in.IDNumber),
		IDFullName: in.IDFullName,
		IDFrontURL: null.StringFrom(in.IDFrontURL),
		IDBackURL:  null.StringFrom(in.IDBackURL),
		SelfieURL:  nullableString(in.SelfieURL),

		Status:      entities.RegistrationStatusPending,
		SubmittedAt: time.Now(),
	}
}

// presentRegistration is the applicant-facing view. Rejected applications
// never echo the national id number or the KYC image URLs back to the
// client; the applicant must re-enter them on resubmission.
func presentRegistration(reg *entities.SellerRegistration) *entities.SellerRegistration {
	out := *reg
	if out.Status == entities.RegistrationStatusRejected {
		out.IDNumber = null.String{}
		out.IDFrontURL = null.String{}
		out.IDBackURL = null.String{}
		out.SelfieURL = null.String{}
	}
	return &out
}

// adminView returns a copy with every field intact for reviewers.
func adminView(reg *entities.SellerRegistration) *entities.SellerRegistration {
	out := *reg
	return &out
}

func nullableString(s string) null.String {
	if strings.TrimSpace(s) == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
