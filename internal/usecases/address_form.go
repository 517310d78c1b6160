package usecases

import (
	"regexp"
	"strings"

	"sportmart.client/internal/domain/entities"
)

// phonePattern accepts Vietnamese mobile numbers: 0 or +84 prefix followed
// by 9-10 digits.
var phonePattern = regexp.MustCompile(`^(0|\+84)\d{9,10}$`)

// nationalIDPattern accepts the old 9-digit and the new 12-digit formats.
var nationalIDPattern = regexp.MustCompile(`^(\d{9}|\d{12})$`)

// adminPrefixes are the administrative designators stripped before the
// name-fallback match. Longer prefixes come first so "Thị xã" is not
// truncated to "xã".
var adminPrefixes = []string{
	"Thành phố", "Thị trấn", "Thị xã",
	"Tỉnh", "Quận", "Huyện", "Phường", "Xã",
}

// DraftFromRecord maps a backend record to the flat form shape, resolving
// province/district/ward against the currently loaded master data. A nil
// record yields an empty draft for the create-new case.
func DraftFromRecord(rec *entities.AddressRecord, provinces []entities.Province, districts []entities.District, wards []entities.Ward) *entities.AddressDraft {
	if rec == nil {
		return &entities.AddressDraft{}
	}

	draft := &entities.AddressDraft{
		RecipientName: rec.ContactName,
		PhoneNumber:   rec.ContactPhone,
		StreetAddress: streetFromFullAddress(rec),
		IsPrimary:     rec.IsPrimary,
		ProvinceName:  rec.ProvinceName,
		DistrictName:  rec.DistrictName,
		WardName:      rec.WardName,
	}

	if p := resolveProvince(rec.ProvinceID, rec.ProvinceName, provinces); p != nil {
		draft.ProvinceID = p.ID
		draft.ProvinceName = p.Name
	}
	if d := resolveDistrict(rec.DistrictID, rec.DistrictName, districts); d != nil {
		draft.DistrictID = d.ID
		draft.DistrictName = d.Name
	}
	if w := resolveWard(rec.WardCode, rec.WardName, wards); w != nil {
		draft.WardID = w.Code
		draft.WardName = w.Name
	}
	return draft
}

// ValidateDraft returns field-keyed error messages; an empty map means the
// draft may be submitted.
func ValidateDraft(d *entities.AddressDraft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.RecipientName) == "" {
		errs["recipientName"] = "vui lòng nhập tên người nhận"
	}
	if !phonePattern.MatchString(strings.TrimSpace(d.PhoneNumber)) {
		errs["phoneNumber"] = "số điện thoại không hợp lệ"
	}
	if d.ProvinceID <= 0 {
		errs["provinceId"] = "vui lòng chọn tỉnh/thành phố"
	}
	if d.DistrictID <= 0 {
		errs["districtId"] = "vui lòng chọn quận/huyện"
	}
	if d.WardID == "" {
		errs["wardId"] = "vui lòng chọn phường/xã"
	}
	if strings.TrimSpace(d.StreetAddress) == "" {
		errs["streetAddress"] = "vui lòng nhập địa chỉ cụ thể"
	}
	return errs
}

// PayloadFromDraft translates the form shape to the wire shape. The full
// address line the backend expects is the street joined with the ward,
// district and province names, comma-separated, skipping empty segments.
func PayloadFromDraft(d *entities.AddressDraft, addrType entities.AddressType) *entities.AddressPayload {
	return &entities.AddressPayload{
		ContactName:  strings.TrimSpace(d.RecipientName),
		ContactPhone: strings.TrimSpace(d.PhoneNumber),
		FullAddress:  ComposeFullAddress(d.StreetAddress, d.WardName, d.DistrictName, d.ProvinceName),
		ProvinceID:   d.ProvinceID,
		DistrictID:   d.DistrictID,
		WardCode:     d.WardID,
		Type:         addrType,
		IsPrimary:    d.IsPrimary,
	}
}

// ComposeFullAddress joins the non-empty segments with ", ".
func ComposeFullAddress(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

func resolveProvince(id int, name string, provinces []entities.Province) *entities.Province {
	for i := range provinces {
		if provinces[i].ID == id {
			return &provinces[i]
		}
	}
	for i := range provinces {
		if namesMatch(provinces[i].Name, name) {
			return &provinces[i]
		}
	}
	return nil
}

func resolveDistrict(id int, name string, districts []entities.District) *entities.District {
	for i := range districts {
		if districts[i].ID == id {
			return &districts[i]
		}
	}
	for i := range districts {
		if namesMatch(districts[i].Name, name) {
			return &districts[i]
		}
	}
	return nil
}

func resolveWard(code, name string, wards []entities.Ward) *entities.Ward {
	for i := range wards {
		if code != "" && wards[i].Code == code {
			return &wards[i]
		}
	}
	for i := range wards {
		if namesMatch(wards[i].Name, name) {
			return &wards[i]
		}
	}
	return nil
}

// namesMatch strips administrative prefixes from both names and accepts
// case-insensitive containment in either direction. Master data gets
// re-seeded and renamed independently of stored records, so a partial match
// beats an empty field; when several candidates match, iteration order makes
// the first one win.
func namesMatch(a, b string) bool {
	sa := stripAdminPrefix(a)
	sb := stripAdminPrefix(b)
	if sa == "" || sb == "" {
		return false
	}
	return strings.Contains(sa, sb) || strings.Contains(sb, sa)
}

func stripAdminPrefix(name string) string {
	trimmed := strings.TrimSpace(name)
	lower := strings.ToLower(trimmed)
	for _, prefix := range adminPrefixes {
		lp := strings.ToLower(prefix)
		if strings.HasPrefix(lower, lp) {
			return strings.ToLower(strings.TrimSpace(trimmed[len(prefix):]))
		}
	}
	return lower
}

// streetFromFullAddress recovers the street segment by removing the trailing
// ward/district/province names the backend appended on submission.
func streetFromFullAddress(rec *entities.AddressRecord) string {
	street := rec.FullAddress
	for _, suffix := range []string{rec.ProvinceName, rec.DistrictName, rec.WardName} {
		if suffix == "" {
			continue
		}
		street = strings.TrimSuffix(street, suffix)
		street = strings.TrimSuffix(strings.TrimSpace(street), ",")
		street = strings.TrimSpace(street)
	}
	return street
}

// ValidateNationalID reports whether the id number matches the 9- or
// 12-digit format. Checked before any network call.
func ValidateNationalID(idNumber string) bool {
	return nationalIDPattern.MatchString(strings.TrimSpace(idNumber))
}

// ValidatePhone reports whether the phone matches the Vietnamese mobile
// pattern.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
