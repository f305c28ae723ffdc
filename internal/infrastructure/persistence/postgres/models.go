package postgres

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID              string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string `gorm:"type:varchar(255);not null;index"`
	Description     string `gorm:"type:text"`
	URL             string `gorm:"type:varchar(500);index"`
	ActiveStartDate *int64
	ActiveEndDate   *int64
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID                string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name              string  `gorm:"type:varchar(255);not null;index"`
	Description       string  `gorm:"type:text"`
	Manufacturer      string  `gorm:"type:varchar(255)"`
	Model             string  `gorm:"type:varchar(255)"`
	PromoMessage      string  `gorm:"type:varchar(500)"`
	DefaultCategoryID *string `gorm:"type:uuid;index"`
	ActiveStartDate   *int64
	ActiveEndDate     *int64
	CreatedAt         int64 `gorm:"autoCreateTime;index"`
	UpdatedAt         int64 `gorm:"autoUpdateTime"`

	DefaultCategory *CategoryModel `gorm:"foreignKey:DefaultCategoryID"`
	Media           []MediaModel   `gorm:"foreignKey:ProductID"`
}

func (ProductModel) TableName() string {
	return "products"
}

// MediaModel é o model GORM para mídias de produto
type MediaModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID string `gorm:"type:uuid;not null;uniqueIndex:idx_product_media_key"`
	Key       string `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_media_key"`
	URL       string `gorm:"type:varchar(500);not null"`
	Title     string `gorm:"type:varchar(255)"`
	AltText   string `gorm:"type:varchar(255)"`
	Tags      string `gorm:"type:varchar(255)"`
}

func (MediaModel) TableName() string {
	return "product_media"
}
