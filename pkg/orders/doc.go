// Package orders holds the delivery-order domain model shared by dashboards
// and the API client: the Order record, its status vocabulary, and the
// status lifecycle that decides which actions a customer, courier, or admin
// view may offer for an order in a given state.
package orders
