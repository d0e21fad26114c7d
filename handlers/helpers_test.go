package handlers

import (
	"errors"

	"github.com/cartways/paypal-express-api/dao"
	"github.com/cartways/paypal-express-api/models"

	"github.com/golang/mock/gomock"
)

// newMockDAOExpectingPayment returns a DAO that captures the created payment
// resource and hands it to the supplied assertion
func newMockDAOExpectingPayment(mockCtrl *gomock.Controller, assert func(resource *models.PaymentResourceDB)) *dao.MockDAO {
	mockDAO := dao.NewMockDAO(mockCtrl)
	mockDAO.EXPECT().CreatePaymentResource(gomock.Any()).DoAndReturn(
		func(resource *models.PaymentResourceDB) error {
			assert(resource)
			return nil
		})
	return mockDAO
}

func newMockDAOFailingCreate(mockCtrl *gomock.Controller) *dao.MockDAO {
	mockDAO := dao.NewMockDAO(mockCtrl)
	mockDAO.EXPECT().CreatePaymentResource(gomock.Any()).Return(errors.New("connection reset"))
	return mockDAO
}
