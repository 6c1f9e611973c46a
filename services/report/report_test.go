package report

import (
	"errors"
	"testing"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeApptRepo struct {
	lastFilter appointmentRepo.StatsFilter
	recent     []models.Appointment
}

func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) GetByCustomer(customerID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) GetByBarber(barberID string) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) GetByBarberAndDate(barberID string, day time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) GetAll() ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) Create(appt *models.Appointment) error { return nil }
func (f *fakeApptRepo) UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeApptRepo) Stats(filter appointmentRepo.StatsFilter) (*models.DashboardStats, error) {
	f.lastFilter = filter
	return &models.DashboardStats{TotalAppointments: 5, MonthlyRevenue: 320}, nil
}

func (f *fakeApptRepo) Recent(filter appointmentRepo.StatsFilter, limit int64) ([]models.Appointment, error) {
	f.lastFilter = filter
	if limit < int64(len(f.recent)) {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if id == "c1" {
		return &models.User{ID: "c1", FirstName: "Kari", LastName: "Traa"}, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error)     { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error)                    { return nil, nil }
func (f *fakeUserRepo) GetStaff() ([]models.User, error)                  { return nil, nil }
func (f *fakeUserRepo) Create(user *models.User) error                    { return nil }
func (f *fakeUserRepo) Update(user *models.User) error                    { return nil }
func (f *fakeUserRepo) UpdateWithDocument(id string, update bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error                            { return nil }
func (f *fakeUserRepo) PushNotification(id string, n models.Notification) error {
	return nil
}
func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func TestDashboardScopesBarberToOwnAppointments(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := &DefaultReportService{Appointments: repo, Users: &fakeUserRepo{}}

	_, err := svc.Dashboard("b1", models.RoleBarber)
	require.NoError(t, err)
	assert.Equal(t, "b1", repo.lastFilter.BarberID)

	_, err = svc.Dashboard("owner", models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.BarberID, "super admin sees the whole shop")
}

func TestRecentActivityDescribesAppointments(t *testing.T) {
	now := time.Now()
	repo := &fakeApptRepo{recent: []models.Appointment{
		{ID: "a1", CustomerID: "c1", Status: models.AppointmentPending, UpdatedAt: now},
		{ID: "a2", CustomerID: "ghost", Status: models.AppointmentCancelled, UpdatedAt: now},
	}}
	svc := &DefaultReportService{Appointments: repo, Users: &fakeUserRepo{}}

	activity, err := svc.RecentActivity("owner", models.RoleSuperAdmin, 10)
	require.NoError(t, err)
	require.Len(t, activity, 2)

	assert.Equal(t, "appointment_booked", activity[0].Type)
	assert.Equal(t, "Kari Traa", activity[0].UserName)
	assert.Contains(t, activity[0].Description, "Kari Traa")

	// Missing customer records degrade gracefully.
	assert.Equal(t, "appointment_cancelled", activity[1].Type)
	assert.Empty(t, activity[1].UserName)
	assert.Contains(t, activity[1].Description, "a customer")
}

func TestRecentActivityDefaultsLimit(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := &DefaultReportService{Appointments: repo, Users: &fakeUserRepo{}}

	_, err := svc.RecentActivity("owner", models.RoleSuperAdmin, 0)
	require.NoError(t, err)
}
