package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/utils"
)

// Seeder populates the database with the initial catalog and site content.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions in dependency order.
func (s *Seeder) SeedAll(adminEmail, adminPassword string) error {
	log.Println("starting database seed")

	if err := s.SeedAdminUser(adminEmail, adminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := s.SeedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if err := s.SeedBrands(); err != nil {
		return fmt.Errorf("failed to seed brands: %w", err)
	}
	if err := s.SeedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := s.SeedContent(); err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}
	if err := s.SeedSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if err := s.SeedStatistics(); err != nil {
		return fmt.Errorf("failed to seed statistics: %w", err)
	}
	if err := s.SeedCompanyValues(); err != nil {
		return fmt.Errorf("failed to seed company values: %w", err)
	}
	if err := s.SeedServices(); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}

	log.Println("database seed completed")
	return nil
}

// SeedAdminUser ensures the super admin account exists.
func (s *Seeder) SeedAdminUser(email, password string) error {
	if email == "" {
		email = "admin@brandsbridgeintl.com"
	}
	if password == "" {
		password = "Admin@123456"
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:     email,
		Password:  hashed,
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleSuperAdmin,
		IsActive:  true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded admin user %s", email)
	return nil
}

// SeedCategories upserts the product categories by slug.
func (s *Seeder) SeedCategories() error {
	categories := []models.Category{
		{Name: "Confectionery", NameAr: "الحلويات", Slug: "confectionery", Description: "Chocolates, candies, and sweet treats from world-renowned brands", Icon: "candy", SortOrder: 1, IsActive: true},
		{Name: "Beverages", NameAr: "المشروبات", Slug: "beverages", Description: "Soft drinks, juices, energy drinks, and premium water brands", Icon: "cup-soda", SortOrder: 2, IsActive: true},
		{Name: "Coffee & Tea", NameAr: "القهوة والشاي", Slug: "coffee-tea", Description: "Premium coffee beans, instant coffee, and fine teas", Icon: "coffee", SortOrder: 3, IsActive: true},
		{Name: "Groceries", NameAr: "البقالة", Slug: "groceries", Description: "Snacks, cereals, pasta, sauces, and everyday food items", Icon: "shopping-basket", SortOrder: 4, IsActive: true},
		{Name: "Household", NameAr: "المنزلية", Slug: "household", Description: "Cleaning products, personal care, and household essentials", Icon: "home", SortOrder: 5, IsActive: true},
		{Name: "Pet Food", NameAr: "طعام الحيوانات", Slug: "pet-food", Description: "Quality nutrition for cats, dogs, and other pets", Icon: "paw-print", SortOrder: 6, IsActive: true},
	}

	for i := range categories {
		if err := s.upsertBy(&categories[i], "slug", []string{"name", "name_ar", "description", "icon", "sort_order"}); err != nil {
			return err
		}
	}
	return nil
}

// SeedBrands upserts the partner brands by slug.
func (s *Seeder) SeedBrands() error {
	brands := []models.Brand{
		{Name: "Nestlé", Slug: "nestle", Description: "Global leader in nutrition, health and wellness", Country: "Switzerland", IsFeatured: true, SortOrder: 1, IsActive: true},
		{Name: "Mars", Slug: "mars", Description: "World-famous for chocolate bars and confectionery", Country: "USA", IsFeatured: true, SortOrder: 2, IsActive: true},
		{Name: "Mondelez", Slug: "mondelez", Description: "Home to iconic snack brands worldwide", Country: "USA", IsFeatured: true, SortOrder: 3, IsActive: true},
		{Name: "Ferrero", Slug: "ferrero", Description: "Italian excellence in premium confectionery", Country: "Italy", IsFeatured: true, SortOrder: 4, IsActive: true},
		{Name: "Lindt", Slug: "lindt", Description: "Swiss master chocolatiers since 1845", Country: "Switzerland", IsFeatured: true, SortOrder: 5, IsActive: true},
		{Name: "Coca-Cola", Slug: "coca-cola", Description: "The world's most recognized beverage brand", Country: "USA", IsFeatured: true, SortOrder: 6, IsActive: true},
		{Name: "PepsiCo", Slug: "pepsico", Description: "Global food and beverage leader", Country: "USA", IsFeatured: true, SortOrder: 7, IsActive: true},
		{Name: "Red Bull", Slug: "red-bull", Description: "Leading energy drink manufacturer", Country: "Austria", IsFeatured: true, SortOrder: 8, IsActive: true},
		{Name: "Lavazza", Slug: "lavazza", Description: "Italian coffee tradition since 1895", Country: "Italy", IsFeatured: true, SortOrder: 9, IsActive: true},
		{Name: "Starbucks", Slug: "starbucks", Description: "Premium coffee experience worldwide", Country: "USA", IsFeatured: true, SortOrder: 10, IsActive: true},
		{Name: "Procter & Gamble", Slug: "pg", Description: "Trusted household and personal care products", Country: "USA", IsFeatured: true, SortOrder: 11, IsActive: true},
		{Name: "Unilever", Slug: "unilever", Description: "Sustainable living brands", Country: "UK/Netherlands", IsFeatured: true, SortOrder: 12, IsActive: true},
		{Name: "Purina", Slug: "purina", Description: "Science-based pet nutrition", Country: "USA", IsFeatured: false, SortOrder: 13, IsActive: true},
		{Name: "Royal Canin", Slug: "royal-canin", Description: "Precise nutrition for cats and dogs", Country: "France", IsFeatured: false, SortOrder: 14, IsActive: true},
	}

	for i := range brands {
		if err := s.upsertBy(&brands[i], "slug", []string{"name", "description", "country", "is_featured", "sort_order"}); err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts upserts a small sample catalog by slug.
func (s *Seeder) SeedProducts() error {
	confectionery, err := s.categoryID("confectionery")
	if err != nil {
		return err
	}
	beverages, err := s.categoryID("beverages")
	if err != nil {
		return err
	}
	nestle, err := s.brandID("nestle")
	if err != nil {
		return err
	}
	cocaCola, err := s.brandID("coca-cola")
	if err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Kit Kat", Slug: "kit-kat", Description: "Crispy wafer fingers covered in smooth milk chocolate", SKU: strPtr("NEST-001"), CategoryID: confectionery, BrandID: nestle, IsFeatured: true, SortOrder: 1, IsActive: true},
		{Name: "After Eight", Slug: "after-eight", Description: "Elegant mint chocolate thins", SKU: strPtr("NEST-002"), CategoryID: confectionery, BrandID: nestle, IsFeatured: true, SortOrder: 2, IsActive: true},
		{Name: "Quality Street", Slug: "quality-street", Description: "Assorted chocolates and toffees", SKU: strPtr("NEST-003"), CategoryID: confectionery, BrandID: nestle, IsFeatured: false, SortOrder: 3, IsActive: true},
		{Name: "Coca-Cola Classic", Slug: "coca-cola-classic", Description: "The original refreshing cola taste", SKU: strPtr("COKE-001"), CategoryID: beverages, BrandID: cocaCola, IsFeatured: true, SortOrder: 4, IsActive: true},
		{Name: "Fanta Orange", Slug: "fanta-orange", Description: "Vibrant orange flavored soft drink", SKU: strPtr("COKE-002"), CategoryID: beverages, BrandID: cocaCola, IsFeatured: true, SortOrder: 5, IsActive: true},
		{Name: "Sprite", Slug: "sprite", Description: "Crisp lemon-lime refreshment", SKU: strPtr("COKE-003"), CategoryID: beverages, BrandID: cocaCola, IsFeatured: false, SortOrder: 6, IsActive: true},
	}

	for i := range products {
		if err := s.upsertBy(&products[i], "slug", []string{"name", "description", "sku", "category_id", "brand_id", "is_featured", "sort_order"}); err != nil {
			return err
		}
	}
	return nil
}

// SeedContent upserts the editable page content by key.
func (s *Seeder) SeedContent() error {
	contents := []models.Content{
		{Key: "hero_title", Type: models.ContentTypeText, Value: "Your Gateway to Global Brands", ValueAr: "بوابتك للعلامات التجارية العالمية", Section: "hero"},
		{Key: "hero_subtitle", Type: models.ContentTypeText, Value: "Premium FMCG Distribution Across Continents", ValueAr: "توزيع السلع الاستهلاكية عالية الجودة عبر القارات", Section: "hero"},
		{Key: "hero_cta", Type: models.ContentTypeText, Value: "Explore Our Products", ValueAr: "استكشف منتجاتنا", Section: "hero"},
		{Key: "about_title", Type: models.ContentTypeText, Value: "About Brands Bridge International", ValueAr: "حول براندز بريدج الدولية", Section: "about"},
		{Key: "about_text", Type: models.ContentTypeHTML, Value: "<p>Brands Bridge International is a leading FMCG trading company specializing in the import, export, and distribution of premium consumer goods. With partnerships spanning across continents, we connect world-renowned brands with markets seeking quality products.</p><p>Our expertise in logistics, regulatory compliance, and market understanding makes us the preferred partner for brands looking to expand their global footprint.</p>", ValueAr: "<p>براندز بريدج الدولية هي شركة رائدة في تجارة السلع الاستهلاكية سريعة الدوران متخصصة في استيراد وتصدير وتوزيع السلع الاستهلاكية الفاخرة.</p>", Section: "about"},
		{Key: "contact_title", Type: models.ContentTypeText, Value: "Get in Touch", ValueAr: "تواصل معنا", Section: "contact"},
		{Key: "contact_subtitle", Type: models.ContentTypeText, Value: "Ready to partner with us? We'd love to hear from you.", ValueAr: "مستعد للشراكة معنا؟ نحب أن نسمع منك.", Section: "contact"},
	}

	for i := range contents {
		if err := s.upsertBy(&contents[i], "key", []string{"type", "value", "value_ar", "section"}); err != nil {
			return err
		}
	}
	return nil
}

// SeedSettings upserts the site settings by key.
func (s *Seeder) SeedSettings() error {
	settings := []models.Setting{
		{Key: "company_name", Value: "Brands Bridge International", Type: "string", Group: "general"},
		{Key: "company_email", Value: "info@brandsbridgeintl.com", Type: "string", Group: "contact"},
		{Key: "company_phone", Value: "+1 (555) 123-4567", Type: "string", Group: "contact"},
		{Key: "company_address", Value: "123 Trade Center, Business District, Dubai, UAE", Type: "string", Group: "contact"},
		{Key: "social_linkedin", Value: "https://linkedin.com/company/brands-bridge-international", Type: "string", Group: "social"},
		{Key: "social_facebook", Value: "https://facebook.com/brandsbridgeintl", Type: "string", Group: "social"},
		{Key: "social_instagram", Value: "https://instagram.com/brandsbridgeintl", Type: "string", Group: "social"},
		{Key: "meta_title", Value: "Brands Bridge International | Premium FMCG Trading", Type: "string", Group: "seo"},
		{Key: "meta_description", Value: "Brands Bridge International - Your trusted partner in global FMCG distribution. Import, export, and distribution of premium consumer goods worldwide.", Type: "string", Group: "seo"},
	}

	for i := range settings {
		if err := s.upsertBy(&settings[i], "key", []string{"value", "type", "group"}); err != nil {
			return err
		}
	}
	return nil
}

// SeedStatistics upserts the home page statistics by key.
func (s *Seeder) SeedStatistics() error {
	statistics := []models.Statistic{
		{Key: "countries", Label: "Countries Served", LabelAr: "الدول التي نخدمها", Value: "75+", Icon: "globe", SortOrder: 1, IsActive: true},
		{Key: "products", Label: "Products Available", LabelAr: "المنتجات المتوفرة", Value: "15,000+", Icon: "package", SortOrder: 2, IsActive: true},
		{Key: "brands", Label: "Partner Brands", LabelAr: "العلامات التجارية الشريكة", Value: "200+", Icon: "award", SortOrder: 3, IsActive: true},
		{Key: "experience", Label: "Years Experience", LabelAr: "سنوات الخبرة", Value: "15+", Icon: "calendar", SortOrder: 4, IsActive: true},
	}

	for i := range statistics {
		if err := s.upsertBy(&statistics[i], "key", []string{"label", "label_ar", "value", "icon", "sort_order"}); err != nil {
			return err
		}
	}
	return nil
}

// SeedCompanyValues inserts the company value cards once, keyed by title.
func (s *Seeder) SeedCompanyValues() error {
	values := []models.CompanyValue{
		{Title: "Expertise", TitleAr: "الخبرة", Description: "Deep industry knowledge and market understanding built over years of successful partnerships.", DescriptionAr: "معرفة عميقة بالصناعة وفهم السوق المبني على سنوات من الشراكات الناجحة.", Icon: "lightbulb", SortOrder: 1, IsActive: true},
		{Title: "Transparency", TitleAr: "الشفافية", Description: "Open communication and honest dealings form the foundation of all our business relationships.", DescriptionAr: "التواصل المفتوح والتعاملات الصادقة تشكل أساس جميع علاقاتنا التجارية.", Icon: "eye", SortOrder: 2, IsActive: true},
		{Title: "Collaboration", TitleAr: "التعاون", Description: "We believe in building lasting partnerships that create mutual value and growth.", DescriptionAr: "نؤمن ببناء شراكات دائمة تخلق قيمة ونمو متبادل.", Icon: "users", SortOrder: 3, IsActive: true},
		{Title: "Commitment", TitleAr: "الالتزام", Description: "Dedicated to delivering excellence in every aspect of our service and operations.", DescriptionAr: "ملتزمون بتقديم التميز في كل جانب من جوانب خدماتنا وعملياتنا.", Icon: "target", SortOrder: 4, IsActive: true},
	}

	for i := range values {
		if err := s.db.Where(models.CompanyValue{Title: values[i].Title}).FirstOrCreate(&values[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedServices inserts the service cards once, keyed by title.
func (s *Seeder) SeedServices() error {
	services := []models.Service{
		{Title: "Import & Export", TitleAr: "الاستيراد والتصدير", Description: "Comprehensive international trade services connecting suppliers with markets worldwide.", DescriptionAr: "خدمات تجارة دولية شاملة تربط الموردين بالأسواق في جميع أنحاء العالم.", Icon: "ship", SortOrder: 1, IsActive: true},
		{Title: "Distribution", TitleAr: "التوزيع", Description: "Efficient logistics and distribution networks ensuring timely delivery across regions.", DescriptionAr: "شبكات لوجستية وتوزيع فعالة تضمن التسليم في الوقت المناسب عبر المناطق.", Icon: "truck", SortOrder: 2, IsActive: true},
		{Title: "Warehousing", TitleAr: "التخزين", Description: "Modern storage facilities with climate control and inventory management systems.", DescriptionAr: "مرافق تخزين حديثة مع التحكم في المناخ وأنظمة إدارة المخزون.", Icon: "warehouse", SortOrder: 3, IsActive: true},
		{Title: "Custom Labeling", TitleAr: "التغليف المخصص", Description: "Professional labeling and packaging services to meet regional requirements.", DescriptionAr: "خدمات التعبئة والتغليف المهنية لتلبية المتطلبات الإقليمية.", Icon: "tag", SortOrder: 4, IsActive: true},
	}

	for i := range services {
		if err := s.db.Where(models.Service{Title: services[i].Title}).FirstOrCreate(&services[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// upsertBy inserts the record or, on a conflict with the unique column,
// refreshes the listed columns.
func (s *Seeder) upsertBy(record interface{}, conflictColumn string, updateColumns []string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictColumn}},
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(record).Error
}

func (s *Seeder) categoryID(slug string) (*uuid.UUID, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category.ID, nil
}

func (s *Seeder) brandID(slug string) (*uuid.UUID, error) {
	var brand models.Brand
	if err := s.db.Where("slug = ?", slug).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand.ID, nil
}

func strPtr(s string) *string {
	return &s
}
