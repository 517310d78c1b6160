package stub

import (
	"github.com/google/uuid"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/crypto"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "Password123"

// seed loads demo users, the location tree and a product catalog. The
// location data deliberately includes a duplicate and a denylisted entry so
// the client-side filtering has something to chew on.
func (s *Store) seed() {
	hash, err := crypto.HashPassword(SeedPassword)
	if err != nil {
		panic(err)
	}

	s.addUser("admin", "admin@sportmart.vn", hash, entities.RoleAdmin)
	s.addUser("seller01", "seller01@sportmart.vn", hash, entities.RoleSeller)
	s.addUser("buyer01", "buyer01@sportmart.vn", hash, entities.RoleBuyer)

	s.provinces = []entities.Province{
		{ID: 1, Name: "Thành phố Hà Nội"},
		{ID: 79, Name: "Thành phố Hồ Chí Minh"},
		{ID: 48, Name: "Thành phố Đà Nẵng"},
		{ID: 999, Name: "Test Province"}, // garbage row kept on purpose
		{ID: 2, Name: "Thành phố Hà Nội"}, // duplicate name kept on purpose
	}

	s.districts[1] = []entities.District{
		{ID: 101, Name: "Quận Ba Đình", ProvinceID: 1},
		{ID: 102, Name: "Quận Hoàn Kiếm", ProvinceID: 1},
		{ID: 103, Name: "Quận Cầu Giấy", ProvinceID: 1},
	}
	s.districts[79] = []entities.District{
		{ID: 760, Name: "Quận 1", ProvinceID: 79},
		{ID: 764, Name: "Quận Gò Vấp", ProvinceID: 79},
		{ID: 769, Name: "Thành phố Thủ Đức", ProvinceID: 79},
	}
	s.districts[48] = []entities.District{
		{ID: 490, Name: "Quận Hải Châu", ProvinceID: 48},
		{ID: 491, Name: "Quận Thanh Khê", ProvinceID: 48},
	}

	s.wards[101] = []entities.Ward{
		{Code: "00001", Name: "Phường Phúc Xá", DistrictID: 101},
		{Code: "00004", Name: "Phường Trúc Bạch", DistrictID: 101},
	}
	s.wards[102] = []entities.Ward{
		{Code: "00037", Name: "Phường Hàng Bạc", DistrictID: 102},
		{Code: "00040", Name: "Phường Hàng Đào", DistrictID: 102},
	}
	s.wards[760] = []entities.Ward{
		{Code: "26734", Name: "Phường Bến Nghé", DistrictID: 760},
		{Code: "26737", Name: "Phường Bến Thành", DistrictID: 760},
	}
	s.wards[490] = []entities.Ward{
		{Code: "20194", Name: "Phường Thạch Thang", DistrictID: 490},
	}

	s.products = []entities.Suggestion{
		{ID: uuid.New(), Name: "Giày chạy bộ Nike Pegasus 40", Price: 3290000},
		{ID: uuid.New(), Name: "Giày đá bóng Adidas Predator", Price: 2590000},
		{ID: uuid.New(), Name: "Vợt cầu lông Yonex Astrox 88D", Price: 4190000},
		{ID: uuid.New(), Name: "Vợt tennis Wilson Pro Staff", Price: 5690000},
		{ID: uuid.New(), Name: "Bóng đá Động Lực UHV 2.07", Price: 450000},
		{ID: uuid.New(), Name: "Áo bóng rổ Jordan Dri-FIT", Price: 890000},
		{ID: uuid.New(), Name: "Tạ tay cao su 10kg", Price: 520000},
		{ID: uuid.New(), Name: "Thảm tập yoga TPE 8mm", Price: 310000},
		{ID: uuid.New(), Name: "Xe đạp địa hình Giant ATX", Price: 10900000},
		{ID: uuid.New(), Name: "Kính bơi Speedo Futura", Price: 420000},
	}
}
