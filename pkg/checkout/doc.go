// Package checkout binds the Stripe Checkout Sessions API.
//
// Every operation is a parameter record with a Send method:
//
//	params := checkout.NewCreateCheckoutSession()
//	params.Mode = api.Ptr(checkout.ModePayment)
//	params.SuccessURL = stripe.String("https://example.com/success")
//	params.LineItems = []checkout.LineItemParams{
//		{Price: stripe.String("price_123"), Quantity: stripe.Int64(1)},
//	}
//	session, err := params.Send(ctx, c)
//
// List operations also have a Paginate method returning a
// client.ListPaginator.
package checkout
