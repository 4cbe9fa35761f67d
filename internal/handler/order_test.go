package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshkart-be/internal/order"
	"freshkart-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlaceOrder_Success(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("PlaceOrder", mock.Anything, mock.Anything, uint(1)).
		Return(order.PlaceResult{OK: true})
	h := &OrderHandler{Svc: svc}

	body := bytes.NewBufferString(`{"orders":[{
		"deliveryAddress":"Test Address",
		"deliveryStages":["ordered"],
		"orderedDate":1677721600,
		"paidPrice":100,
		"paymentStatus":1,
		"productDetails":{"productKey":2,"noOfItems":3,"variationQuantity":500}
	}]}`)
	rec := httptest.NewRecorder()

	h.PlaceOrder(rec, authedRequest(http.MethodPost, "/orders/place-order", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully place order")
	svc.AssertExpectations(t)
}

func TestPlaceOrder_Rejected(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("PlaceOrder", mock.Anything, mock.Anything, uint(1)).
		Return(order.PlaceResult{OK: false, Message: "Failure placing order"})
	h := &OrderHandler{Svc: svc}

	body := bytes.NewBufferString(`{"orders":[]}`)
	rec := httptest.NewRecorder()

	h.PlaceOrder(rec, authedRequest(http.MethodPost, "/orders/place-order", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failure placing order")
}

func TestPlaceOrder_NoSession(t *testing.T) {
	h := &OrderHandler{Svc: new(mockOrderService)}

	req := httptest.NewRequest(http.MethodPost, "/orders/place-order",
		bytes.NewBufferString(`{"orders":[]}`))
	rec := httptest.NewRecorder()

	h.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session expired")
}

func TestGetAllOrders_JoinsProductDetails(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("GetOrdersOfUser", mock.Anything, uint(1)).Return([]order.Order{
		{
			Key:               7,
			UserKey:           1,
			ProductKey:        2,
			VariationQuantity: 500,
			NoOfItems:         3,
			PaidPrice:         120,
			PaymentStatus:     1,
			OrderedDate:       1677721600,
			DeliveryAddress:   "Test Address",
			DeliveryStages:    []string{"ordered", "shipped"},
		},
	}, nil)

	productSvc := new(mockProductService)
	productSvc.On("GetProductsFromKey", mock.Anything,
		product.Selector{Type: product.SelectorProduct, Key: 2}).
		Return([]product.Product{{Key: 2, Name: "Tomato"}}, nil)

	h := &OrderHandler{Svc: svc, ProductSvc: productSvc}
	rec := httptest.NewRecorder()

	h.GetAllOrders(rec, authedRequest(http.MethodGet, "/users/get-all-orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderModel"`)
	assert.Contains(t, rec.Body.String(), `"deliveryStages":["ordered","shipped"]`)
	assert.Contains(t, rec.Body.String(), `"productName":"Tomato"`)
	svc.AssertExpectations(t)
	productSvc.AssertExpectations(t)
}

func TestGetAllOrders_Empty(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("GetOrdersOfUser", mock.Anything, uint(1)).Return([]order.Order{}, nil)
	h := &OrderHandler{Svc: svc, ProductSvc: new(mockProductService)}
	rec := httptest.NewRecorder()

	h.GetAllOrders(rec, authedRequest(http.MethodGet, "/users/get-all-orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":[]`)
}
