package dao

import (
	"context"
	"errors"
	"time"

	"github.com/cartways/paypal-express-api/models"
	"github.com/companieshouse/chs.go/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	c, err := mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its work.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure here should result in
	// a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = c.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	client = c
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// NewGetMongoDatabase returns a handle to the database for the given
// connection details
func NewGetMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as
// the backend driver. The database handle is resolved on first use so that
// constructing the service does not require a reachable database.
type MongoService struct {
	db             MongoDatabaseInterface
	URL            string
	DatabaseName   string
	CollectionName string
}

// NewDAOService returns a new DAO service backed by MongoDB
func NewDAOService(mongoDBURL, databaseName, collectionName string) *MongoService {
	return &MongoService{
		URL:            mongoDBURL,
		DatabaseName:   databaseName,
		CollectionName: collectionName,
	}
}

func (m *MongoService) collection() *mongo.Collection {
	if m.db == nil {
		m.db = NewGetMongoDatabase(m.URL, m.DatabaseName)
	}
	return m.db.Collection(m.CollectionName)
}

// CreatePaymentResource writes a new payment resource to the DB
func (m *MongoService) CreatePaymentResource(paymentResource *models.PaymentResourceDB) error {
	collection := m.collection()
	_, err := collection.InsertOne(context.Background(), paymentResource)

	return err
}

// GetPaymentResource gets a payment resource from the DB
// If the payment is not found in the DB, return nil
func (m *MongoService) GetPaymentResource(id string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.collection()
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Info("no payment resource found for id " + id)
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	return &resource, nil
}

// GetPaymentResourceByInvoice gets a payment resource from the DB by the
// invoice number it was created against
// If the payment is not found in the DB, return nil
func (m *MongoService) GetPaymentResourceByInvoice(invoiceNumber string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.collection()
	dbResource := collection.FindOne(context.Background(), bson.M{"invoice_number": invoiceNumber})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Info("no payment resource found for invoice number " + invoiceNumber)
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	return &resource, nil
}

// PatchPaymentResource patches a payment resource in the DB
func (m *MongoService) PatchPaymentResource(id string, paymentUpdate *models.PaymentResourceDB) error {
	patchUpdate := make(bson.M)

	// Patch only these fields
	if paymentUpdate.Status != "" {
		patchUpdate["status"] = paymentUpdate.Status
	}
	if !paymentUpdate.CompletedAt.IsZero() {
		patchUpdate["completed_at"] = paymentUpdate.CompletedAt
	}
	if paymentUpdate.ExternalPaymentTransactionID != "" {
		patchUpdate["external_payment_transaction_id"] = paymentUpdate.ExternalPaymentTransactionID
	}
	if paymentUpdate.RefundID != "" {
		patchUpdate["refund_id"] = paymentUpdate.RefundID
	}
	if paymentUpdate.RefundStatus != "" {
		patchUpdate["refund_status"] = paymentUpdate.RefundStatus
	}

	collection := m.collection()
	result, err := collection.UpdateByID(context.Background(), id, bson.M{"$set": patchUpdate})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errors.New("not found")
	}

	return nil
}
