package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	TaxRate                  = decimal.RequireFromString("0.08")
	DeliveryFee              = decimal.RequireFromString("3.99")
	DefaultEstimatedDelivery = 30 * time.Minute
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("delivery address is not set")
	ErrMissingPayment = errors.New("payment method is not set")
)

type OrderLine struct {
	ID                  string   `json:"id"`
	Item                MenuItem `json:"item"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"special_instructions"`
}

func (l OrderLine) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is the cart while its status is cart and the placed order afterwards.
// Line mutations are only meaningful in the cart status; callers hand a placed
// order to tracking and start a fresh cart.
type Order struct {
	Lines                 []OrderLine
	DeliveryAddress       *Address
	PaymentMethod         *PaymentMethod
	RequestedDeliveryTime *time.Time
	Status                OrderStatus
	SpecialInstructions   string
	OrderNumber           string
	EstimatedDelivery     time.Duration

	newOrderNumber func() string
}

func NewOrder() *Order {
	return &Order{
		Lines:             []OrderLine{},
		Status:            StatusCart,
		EstimatedDelivery: DefaultEstimatedDelivery,
	}
}

// AddItem merges into an existing line for the same item. The quantity is
// taken as given.
func (o *Order) AddItem(item MenuItem, quantity int) OrderLine {
	for i := range o.Lines {
		if o.Lines[i].Item.ID == item.ID {
			o.Lines[i].Quantity += quantity
			return o.Lines[i]
		}
	}

	line := OrderLine{
		ID:       uuid.NewString(),
		Item:     item,
		Quantity: quantity,
	}
	o.Lines = append(o.Lines, line)
	return line
}

func (o *Order) RemoveItem(lineID string) {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity clamps to a minimum of one.
func (o *Order) UpdateQuantity(lineID string, quantity int) {
	if line := o.line(lineID); line != nil {
		line.Quantity = max(1, quantity)
	}
}

func (o *Order) SetLineInstructions(lineID, instructions string) {
	if line := o.line(lineID); line != nil {
		line.SpecialInstructions = instructions
	}
}

func (o *Order) Line(lineID string) (OrderLine, bool) {
	if line := o.line(lineID); line != nil {
		return *line, true
	}
	return OrderLine{}, false
}

func (o *Order) line(lineID string) *OrderLine {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			return &o.Lines[i]
		}
	}
	return nil
}

// Clear keeps the address, payment method and status.
func (o *Order) Clear() {
	o.Lines = []OrderLine{}
	o.SpecialInstructions = ""
}

func (o *Order) SetDeliveryAddress(address Address) {
	o.DeliveryAddress = &address
}

func (o *Order) SetPaymentMethod(method PaymentMethod) {
	o.PaymentMethod = &method
}

func (o *Order) ItemCount() int {
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}

func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range o.Lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

func (o *Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(TaxRate)
}

func (o *Order) DeliveryFee() decimal.Decimal {
	if len(o.Lines) == 0 {
		return decimal.Zero
	}
	return DeliveryFee
}

func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax()).Add(o.DeliveryFee())
}

// CheckoutErrors reports every unmet checkout precondition, or nil.
func (o *Order) CheckoutErrors() error {
	var errs []error
	if len(o.Lines) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	if o.DeliveryAddress == nil {
		errs = append(errs, ErrMissingAddress)
	}
	if o.PaymentMethod == nil {
		errs = append(errs, ErrMissingPayment)
	}
	return errors.Join(errs...)
}

// Checkout moves the cart to preparing and assigns the order number. On
// failure nothing is mutated.
func (o *Order) Checkout() error {
	if o.Status != StatusCart {
		return &TransitionError{From: o.Status, To: StatusPreparing}
	}
	if err := o.CheckoutErrors(); err != nil {
		return err
	}

	o.OrderNumber = o.nextOrderNumber()
	o.Status = StatusPreparing
	return nil
}

func (o *Order) nextOrderNumber() string {
	if o.newOrderNumber != nil {
		return o.newOrderNumber()
	}
	return generateOrderNumber()
}

// Clone deep-copies lines and optional selections so the copy can outlive
// later mutations of o.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Lines = append(make([]OrderLine, 0, len(o.Lines)), o.Lines...)
	if o.DeliveryAddress != nil {
		address := *o.DeliveryAddress
		clone.DeliveryAddress = &address
	}
	if o.PaymentMethod != nil {
		method := *o.PaymentMethod
		clone.PaymentMethod = &method
	}
	if o.RequestedDeliveryTime != nil {
		at := *o.RequestedDeliveryTime
		clone.RequestedDeliveryTime = &at
	}
	return &clone
}

// generateOrderNumber produces "#" + yyMMddHHmm + four random digits.
func generateOrderNumber() string {
	return fmt.Sprintf("#%s%04d", time.Now().Format("0601021504"), rand.Intn(10000))
}
