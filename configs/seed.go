package configs

import (
	"log"
	"time"

	"masalacafe/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// สร้าง super admin ครั้งแรก (identity confirmed + admin approved)
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	now := time.Now()
	id := uuid.NewString()
	identity := entity.Identity{
		ID:               id,
		Email:            cfg.AdminEmail,
		PasswordHash:     string(hash),
		FullName:         "Super Admin",
		EmailConfirmedAt: &now,
	}
	if err := db.Create(&identity).Error; err != nil {
		return err
	}

	admin := entity.Admin{
		AccountID:  &id,
		Email:      cfg.AdminEmail,
		FirstName:  "Super",
		LastName:   "Admin",
		IsApproved: true,
		ApprovedAt: &now,
	}
	return db.Create(&admin).Error
}

type seedItem struct {
	name        string
	description string
	price       float64
	category    string // slug
	imageURL    string
	vegetarian  bool
	popular     bool
}

// Seed หมวดหมู่และเมนูเริ่มต้น — upsert ให้รันซ้ำได้
func SeedMenu() error {
	db := DB()

	categories := []entity.Category{
		{Name: "Cafe Items", Slug: "cafe", Description: "Coffee, pastries, and light snacks"},
		{Name: "Indian Dishes", Slug: "indian", Description: "Traditional Indian cuisine"},
		{Name: "South Indian", Slug: "south-indian", Description: "Authentic South Indian specialties"},
	}
	for i := range categories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
		}).Create(&categories[i]).Error
		if err != nil {
			log.Printf("could not upsert category %s: %v", categories[i].Name, err)
		}
	}

	// ดึง id ของหมวดหลัง upsert เพื่อ map slug -> id
	var rows []entity.Category
	if err := db.Find(&rows).Error; err != nil {
		return err
	}
	slugToID := make(map[string]uint, len(rows))
	for _, c := range rows {
		slugToID[c.Slug] = c.ID
	}

	items := []seedItem{
		{"Cappuccino", "Espresso with steamed milk and foam", 4.99, "cafe", "https://images.unsplash.com/photo-1572442388796-11668a67e53d", true, true},
		{"Chocolate Croissant", "Buttery croissant filled with chocolate", 3.99, "cafe", "https://images.unsplash.com/photo-1608198093002-ad4e005484ec", true, false},
		{"Espresso", "Strong concentrated coffee served in a small cup", 3.49, "cafe", "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04", true, false},
		{"Latte", "Espresso with steamed milk and a light layer of foam", 4.79, "cafe", "https://images.unsplash.com/photo-1570968915860-54d5c301fa9f", true, true},
		{"Masala Chai", "Spiced tea with steamed milk", 4.89, "cafe", "https://images.unsplash.com/photo-1529474944862-30e695621eac", true, false},
		{"Blueberry Muffin", "Moist muffin packed with fresh blueberries", 3.79, "cafe", "https://images.unsplash.com/photo-1607958996333-41aef7caefaa", true, false},
		{"Avocado Toast", "Multigrain toast topped with mashed avocado", 7.99, "cafe", "https://images.unsplash.com/photo-1603046891744-76e6300f82ef", true, false},
		{"Butter Chicken", "Tender chicken in a rich tomato and butter sauce", 14.99, "indian", "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398", false, true},
		{"Paneer Tikka Masala", "Cottage cheese cubes in a spiced tomato gravy", 13.99, "indian", "https://images.unsplash.com/photo-1565557623262-b51c2513a641", true, true},
		{"Chicken Biryani", "Fragrant basmati rice cooked with spiced chicken", 16.99, "indian", "https://images.unsplash.com/photo-1589302168068-964664d93dc0", false, true},
		{"Vegetable Biryani", "Aromatic rice dish with mixed vegetables and spices", 14.49, "indian", "https://images.unsplash.com/photo-1631452180519-c014fe946bc7", true, false},
		{"Dal Makhani", "Black lentils and kidney beans in a creamy buttery sauce", 13.49, "indian", "https://images.unsplash.com/photo-1599042891164-e71d4baecd7c", true, false},
		{"Palak Paneer", "Cottage cheese cubes in a creamy spinach sauce", 14.49, "indian", "https://images.unsplash.com/photo-1601050690597-df0568f70950", true, false},
		{"Garlic Naan", "Soft flatbread with garlic and butter", 3.99, "indian", "https://images.unsplash.com/photo-1610057099431-d73a1c9d2f2f", true, false},
		{"Vegetable Samosas", "Crispy pastry filled with spiced potatoes and peas", 6.99, "indian", "https://images.unsplash.com/photo-1601050690597-df0568f70950", true, true},
		{"Masala Dosa", "Crispy rice crepe filled with spiced potatoes", 12.99, "south-indian", "https://images.unsplash.com/photo-1589301760014-d929f3979dbc", true, true},
		{"Idli Sambar", "Steamed rice cakes served with lentil soup and chutney", 10.99, "south-indian", "https://images.unsplash.com/photo-1626108870265-123cae36ec2a", true, false},
		{"Uttapam", "Thick rice pancake topped with vegetables", 11.99, "south-indian", "https://images.unsplash.com/photo-1567337710282-00832b415979", true, false},
	}

	for _, it := range items {
		catID, ok := slugToID[it.category]
		if !ok {
			log.Printf("category not found for slug: %s", it.category)
			continue
		}
		row := entity.MenuItem{
			Name:         it.name,
			Description:  it.description,
			Price:        it.price,
			CategoryID:   catID,
			CategorySlug: it.category, // เก็บ slug คู่กับ id
			ImageURL:     it.imageURL,
			Vegetarian:   it.vegetarian,
			IsPopular:    it.popular,
			IsAvailable:  true,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description", "price", "category_id", "category_slug",
				"image_url", "vegetarian", "is_popular",
			}),
		}).Create(&row).Error
		if err != nil {
			log.Printf("could not upsert menu item %s: %v", it.name, err)
		}
	}

	log.Println("✅ Menu seeded")
	return nil
}
