package shared

import (
	"time"

	"github.com/google/uuid"
)

// User roles as the backend reports them.
const (
	RoleClient   = "client"
	RoleProvider = "service_provider"
	RoleAdmin    = "admin"
)

// User represents the authenticated account. The backend is the source of
// truth; this is the cached client-side copy.
type User struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	ContactNumber   *string    `json:"contact_number,omitempty"`
	Address         *string    `json:"address,omitempty"`
	City            *string    `json:"city,omitempty"`
	Role            string     `json:"role"`
	ProfilePicture  *string    `json:"profile_picture,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	PhoneVerifiedAt *time.Time `json:"phone_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

// FullName joins first and last name the way the profile header displays it.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsProvider reports whether the account can own a provider profile.
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// ProviderProfile holds the business attributes nested under a provider account.
type ProviderProfile struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	BusinessName       *string    `json:"business_name,omitempty"`
	Bio                *string    `json:"bio,omitempty"`
	YearsOfExperience  int        `json:"years_of_experience"`
	ServiceAreaRadius  float64    `json:"service_area_radius"`
	IsAvailable        bool       `json:"is_available"`
	VerificationStatus string     `json:"verification_status"` // "pending", "verified", "rejected"
	TotalEarnings      float64    `json:"total_earnings"`
	AverageRating      float64    `json:"average_rating"`
	TotalReviews       int        `json:"total_reviews"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ServiceOffering is one service a provider publishes for clients to book.
type ServiceOffering struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryID   uuid.UUID `json:"category_id"`
	PricingType  string    `json:"pricing_type"` // "fixed", "hourly", "custom"
	BasePrice    float64   `json:"base_price"`
	Duration     *string   `json:"duration,omitempty"`
	IsActive     bool      `json:"is_active"`
	ImageURLs    []string  `json:"images,omitempty"`
	ViewsCount   int       `json:"views_count"`
	BookingCount int       `json:"bookings_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProviderStatistics aggregates earnings and rating figures for the dashboard.
type ProviderStatistics struct {
	TotalEarnings     float64 `json:"total_earnings"`
	EarningsThisMonth float64 `json:"earnings_this_month"`
	CompletedBookings int     `json:"completed_bookings"`
	AverageRating     float64 `json:"average_rating"`
	TotalReviews      int     `json:"total_reviews"`
	ActiveServices    int     `json:"active_services"`
}
