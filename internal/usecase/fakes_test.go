package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s: %w", user.ID.String(), apperr.ErrNotFound)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id.String(), apperr.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok {
		return fmt.Errorf("session: %w", apperr.ErrNotFound)
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
	inUse      map[uuid.UUID]bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*entity.Category),
		inUse:      make(map[uuid.UUID]bool),
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			return fmt.Errorf("category %s already exists: %w", category.Name, apperr.ErrConflict)
		}
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, category := range f.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Category
	for _, category := range f.categories {
		all = append(all, category)
	}
	return all, nil
}

func (f *fakeCategoryRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return fmt.Errorf("category %s: %w", id.String(), apperr.ErrNotFound)
	}
	if f.inUse[id] {
		return fmt.Errorf("category %s still has packages: %w", id.String(), apperr.ErrConflict)
	}
	delete(f.categories, id)
	return nil
}

type fakePackageTypeRepo struct {
	mu    sync.Mutex
	types map[uuid.UUID]*entity.PackageType
}

func newFakePackageTypeRepo() *fakePackageTypeRepo {
	return &fakePackageTypeRepo{types: make(map[uuid.UUID]*entity.PackageType)}
}

func (f *fakePackageTypeRepo) Create(_ context.Context, packageType *entity.PackageType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.types {
		if existing.Name == packageType.Name {
			return fmt.Errorf("package type %s already exists: %w", packageType.Name, apperr.ErrConflict)
		}
	}
	f.types[packageType.ID] = packageType
	return nil
}

func (f *fakePackageTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PackageType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.types[id], nil
}

func (f *fakePackageTypeRepo) FindByName(_ context.Context, name string) (*entity.PackageType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, packageType := range f.types {
		if packageType.Name == name {
			return packageType, nil
		}
	}
	return nil, nil
}

func (f *fakePackageTypeRepo) FindAll(_ context.Context) ([]*entity.PackageType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.PackageType
	for _, packageType := range f.types {
		all = append(all, packageType)
	}
	return all, nil
}

func (f *fakePackageTypeRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.types)), nil
}

func (f *fakePackageTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.types[id]; !ok {
		return fmt.Errorf("package type %s: %w", id.String(), apperr.ErrNotFound)
	}
	delete(f.types, id)
	return nil
}

type fakePackageRepo struct {
	mu       sync.Mutex
	packages map[uuid.UUID]*entity.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[uuid.UUID]*entity.Package)}
}

func (f *fakePackageRepo) Create(_ context.Context, pkg *entity.Package) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.packages[pkg.ID] = pkg
	return nil
}

func (f *fakePackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.packages[id], nil
}

func (f *fakePackageRepo) FindAll(_ context.Context) ([]*entity.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Package
	for _, pkg := range f.packages {
		all = append(all, pkg)
	}
	return all, nil
}

func (f *fakePackageRepo) FindByCategoryID(_ context.Context, categoryID uuid.UUID) ([]*entity.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Package
	for _, pkg := range f.packages {
		if pkg.CategoryID == categoryID {
			matched = append(matched, pkg)
		}
	}
	return matched, nil
}

func (f *fakePackageRepo) CountActive(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, pkg := range f.packages {
		if pkg.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakePackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.packages[id]; !ok {
		return fmt.Errorf("package %s: %w", id.String(), apperr.ErrNotFound)
	}
	delete(f.packages, id)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Booking
	for _, booking := range f.bookings {
		copied := *booking
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Booking
	for _, booking := range f.bookings {
		if !booking.CreatedAt.Before(start) && !booking.CreatedAt.After(end) {
			copied := *booking
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s: %w", bookingID.String(), apperr.ErrNotFound)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

// fakePaymentRepo mirrors the transactional semantics of the real
// implementation: check and increment happen under one lock.
type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID][]*entity.Payment
	bookings *fakeBookingRepo
}

func newFakePaymentRepo(bookings *fakeBookingRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[uuid.UUID][]*entity.Payment),
		bookings: bookings,
	}
}

func (f *fakePaymentRepo) ApplyPayment(_ context.Context, payment *entity.Payment) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings.mu.Lock()
	defer f.bookings.mu.Unlock()

	booking, ok := f.bookings.bookings[payment.BookingID]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", payment.BookingID.String(), apperr.ErrNotFound)
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusPaid {
		return nil, fmt.Errorf("booking %s is %s: %w", booking.ID.String(), booking.Status, apperr.ErrConflict)
	}
	if booking.AmountPaid+payment.Amount > booking.TotalAmount {
		return nil, fmt.Errorf("payment of %.2f exceeds outstanding balance %.2f: %w",
			payment.Amount, booking.TotalAmount-booking.AmountPaid, apperr.ErrConflict)
	}

	f.payments[payment.BookingID] = append(f.payments[payment.BookingID], payment)

	booking.AmountPaid += payment.Amount
	if booking.AmountPaid >= booking.TotalAmount {
		booking.Status = entity.BookingStatusPaid
	}
	booking.UpdatedAt = time.Now()

	copied := *booking
	return &copied, nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payments[bookingID], nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Payment
	for _, list := range f.payments {
		all = append(all, list...)
	}
	return all, nil
}

func (f *fakePaymentRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, list := range f.payments {
		count += int64(len(list))
	}
	return count, nil
}

type fakeAdminSettingRepo struct {
	mu       sync.Mutex
	settings map[string]*entity.AdminSetting
}

func newFakeAdminSettingRepo() *fakeAdminSettingRepo {
	return &fakeAdminSettingRepo{settings: make(map[string]*entity.AdminSetting)}
}

func (f *fakeAdminSettingRepo) Upsert(_ context.Context, setting *entity.AdminSetting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[setting.SettingName] = setting
	return nil
}

func (f *fakeAdminSettingRepo) FindByName(_ context.Context, name string) (*entity.AdminSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings[name], nil
}

func (f *fakeAdminSettingRepo) FindAll(_ context.Context) ([]*entity.AdminSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.AdminSetting
	for _, setting := range f.settings {
		all = append(all, setting)
	}
	return all, nil
}

type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries []*entity.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{}
}

func (f *fakeInquiryRepo) Create(_ context.Context, inquiry *entity.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inquiries = append(f.inquiries, inquiry)
	return nil
}

func (f *fakeInquiryRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inquiries, nil
}

func (f *fakeInquiryRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.inquiries)), nil
}

func newTestRepository() *repository.Repository {
	bookings := newFakeBookingRepo()
	return &repository.Repository{
		User:         newFakeUserRepo(),
		Session:      newFakeSessionRepo(),
		Category:     newFakeCategoryRepo(),
		PackageType:  newFakePackageTypeRepo(),
		Package:      newFakePackageRepo(),
		Booking:      bookings,
		Payment:      newFakePaymentRepo(bookings),
		AdminSetting: newFakeAdminSettingRepo(),
		Inquiry:      newFakeInquiryRepo(),
	}
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
