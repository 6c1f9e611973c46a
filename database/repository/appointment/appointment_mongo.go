package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: database.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "appointment_date", Value: -1}}},
		{Keys: bson.D{{Key: "barber_id", Value: 1}, {Key: "appointment_date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetByCustomer retrieves a customer's appointments, newest first.
func (r *MongoAppointmentRepo) GetByCustomer(customerID string) ([]models.Appointment, error) {
	return r.find(bson.M{"customer_id": customerID})
}

// GetByBarber retrieves a barber's appointments, newest first.
func (r *MongoAppointmentRepo) GetByBarber(barberID string) ([]models.Appointment, error) {
	return r.find(bson.M{"barber_id": barberID})
}

// GetByBarberAndDate retrieves non-cancelled appointments for a barber within
// the given day.
func (r *MongoAppointmentRepo) GetByBarberAndDate(barberID string, day time.Time) ([]models.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	return r.find(bson.M{
		"barber_id":        barberID,
		"status":           bson.M{"$ne": models.AppointmentCancelled},
		"appointment_date": bson.M{"$gte": start, "$lt": end},
	})
}

// GetAll retrieves every appointment, newest first.
func (r *MongoAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return r.find(bson.M{})
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// Create inserts a new appointment.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// UpdateStatus transitions an appointment to a new status and returns the
// updated record.
func (r *MongoAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s status: %w", id, err)
	}
	return &appt, nil
}

// Stats aggregates the dashboard counters with a single pipeline pass plus
// two targeted counts for the day and month windows.
func (r *MongoAppointmentRepo) Stats(filter StatsFilter) (*models.DashboardStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := bson.M{}
	if filter.BarberID != "" {
		base["barber_id"] = filter.BarberID
	}

	stats := &models.DashboardStats{}

	total, err := r.coll.CountDocuments(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	stats.TotalAppointments = total

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayFilter := withBase(base, bson.M{"appointment_date": bson.M{"$gte": dayStart, "$lt": dayStart.AddDate(0, 0, 1)}})
	if stats.TodayAppointments, err = r.coll.CountDocuments(ctx, todayFilter); err != nil {
		return nil, fmt.Errorf("failed to count today's appointments: %w", err)
	}

	for status, dst := range map[models.AppointmentStatus]*int64{
		models.AppointmentPending:   &stats.PendingAppointments,
		models.AppointmentCompleted: &stats.CompletedAppointments,
		models.AppointmentCancelled: &stats.CancelledAppointments,
	} {
		if *dst, err = r.coll.CountDocuments(ctx, withBase(base, bson.M{"status": status})); err != nil {
			return nil, fmt.Errorf("failed to count %s appointments: %w", status, err)
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	match := withBase(base, bson.M{
		"status":           models.AppointmentCompleted,
		"appointment_date": bson.M{"$gte": monthStart},
	})
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total_amount"}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode revenue aggregation: %w", err)
	}
	if len(rows) > 0 {
		stats.MonthlyRevenue = rows[0].Revenue
	}
	return stats, nil
}

// Recent returns the newest appointments for the activity feed.
func (r *MongoAppointmentRepo) Recent(filter StatsFilter, limit int64) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := bson.M{}
	if filter.BarberID != "" {
		base["barber_id"] = filter.BarberID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, base, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode recent appointments: %w", err)
	}
	return appts, nil
}

func withBase(base, extra bson.M) bson.M {
	merged := bson.M{}
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
