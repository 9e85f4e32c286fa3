// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mateovidal/crmbridge/ent/customer"
	"github.com/mateovidal/crmbridge/ent/deal"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/ent/lead"
	"github.com/mateovidal/crmbridge/ent/payment"
	"github.com/mateovidal/crmbridge/ent/schema"
	"github.com/mateovidal/crmbridge/ent/subscription"
	"github.com/mateovidal/crmbridge/ent/webhookdelivery"
	"github.com/mateovidal/crmbridge/ent/webhookendpoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[0].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescEmail is the schema descriptor for email field.
	customerDescEmail := customerFields[1].Descriptor()
	// customer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	customer.EmailValidator = customerDescEmail.Validators[0].(func(string) error)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[5].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[6].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	dealFields := schema.Deal{}.Fields()
	_ = dealFields
	// dealDescTitle is the schema descriptor for title field.
	dealDescTitle := dealFields[0].Descriptor()
	// deal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	deal.TitleValidator = dealDescTitle.Validators[0].(func(string) error)
	// dealDescAmount is the schema descriptor for amount field.
	dealDescAmount := dealFields[1].Descriptor()
	// deal.DefaultAmount holds the default value on creation for the amount field.
	deal.DefaultAmount = dealDescAmount.Default.(float64)
	// dealDescCurrency is the schema descriptor for currency field.
	dealDescCurrency := dealFields[2].Descriptor()
	// deal.DefaultCurrency holds the default value on creation for the currency field.
	deal.DefaultCurrency = dealDescCurrency.Default.(string)
	// dealDescCreatedAt is the schema descriptor for created_at field.
	dealDescCreatedAt := dealFields[4].Descriptor()
	// deal.DefaultCreatedAt holds the default value on creation for the created_at field.
	deal.DefaultCreatedAt = dealDescCreatedAt.Default.(func() time.Time)
	// dealDescUpdatedAt is the schema descriptor for updated_at field.
	dealDescUpdatedAt := dealFields[5].Descriptor()
	// deal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deal.DefaultUpdatedAt = dealDescUpdatedAt.Default.(func() time.Time)
	// deal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deal.UpdateDefaultUpdatedAt = dealDescUpdatedAt.UpdateDefault.(func() time.Time)
	integrationFields := schema.Integration{}.Fields()
	_ = integrationFields
	// integrationDescName is the schema descriptor for name field.
	integrationDescName := integrationFields[0].Descriptor()
	// integration.NameValidator is a validator for the "name" field. It is called by the builders before save.
	integration.NameValidator = integrationDescName.Validators[0].(func(string) error)
	// integrationDescIsActive is the schema descriptor for is_active field.
	integrationDescIsActive := integrationFields[3].Descriptor()
	// integration.DefaultIsActive holds the default value on creation for the is_active field.
	integration.DefaultIsActive = integrationDescIsActive.Default.(bool)
	// integrationDescAutoSync is the schema descriptor for auto_sync field.
	integrationDescAutoSync := integrationFields[6].Descriptor()
	// integration.DefaultAutoSync holds the default value on creation for the auto_sync field.
	integration.DefaultAutoSync = integrationDescAutoSync.Default.(bool)
	// integrationDescSyncIntervalMins is the schema descriptor for sync_interval_mins field.
	integrationDescSyncIntervalMins := integrationFields[7].Descriptor()
	// integration.DefaultSyncIntervalMins holds the default value on creation for the sync_interval_mins field.
	integration.DefaultSyncIntervalMins = integrationDescSyncIntervalMins.Default.(int)
	// integration.SyncIntervalMinsValidator is a validator for the "sync_interval_mins" field. It is called by the builders before save.
	integration.SyncIntervalMinsValidator = integrationDescSyncIntervalMins.Validators[0].(func(int) error)
	// integrationDescCreatedAt is the schema descriptor for created_at field.
	integrationDescCreatedAt := integrationFields[8].Descriptor()
	// integration.DefaultCreatedAt holds the default value on creation for the created_at field.
	integration.DefaultCreatedAt = integrationDescCreatedAt.Default.(func() time.Time)
	// integrationDescUpdatedAt is the schema descriptor for updated_at field.
	integrationDescUpdatedAt := integrationFields[9].Descriptor()
	// integration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	integration.DefaultUpdatedAt = integrationDescUpdatedAt.Default.(func() time.Time)
	// integration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	integration.UpdateDefaultUpdatedAt = integrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	integrationlogFields := schema.IntegrationLog{}.Fields()
	_ = integrationlogFields
	// integrationlogDescEvent is the schema descriptor for event field.
	integrationlogDescEvent := integrationlogFields[1].Descriptor()
	// integrationlog.EventValidator is a validator for the "event" field. It is called by the builders before save.
	integrationlog.EventValidator = integrationlogDescEvent.Validators[0].(func(string) error)
	// integrationlogDescCreatedAt is the schema descriptor for created_at field.
	integrationlogDescCreatedAt := integrationlogFields[5].Descriptor()
	// integrationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	integrationlog.DefaultCreatedAt = integrationlogDescCreatedAt.Default.(func() time.Time)
	integrationsecretFields := schema.IntegrationSecret{}.Fields()
	_ = integrationsecretFields
	// integrationsecretDescKey is the schema descriptor for key field.
	integrationsecretDescKey := integrationsecretFields[1].Descriptor()
	// integrationsecret.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	integrationsecret.KeyValidator = integrationsecretDescKey.Validators[0].(func(string) error)
	// integrationsecretDescCiphertext is the schema descriptor for ciphertext field.
	integrationsecretDescCiphertext := integrationsecretFields[2].Descriptor()
	// integrationsecret.CiphertextValidator is a validator for the "ciphertext" field. It is called by the builders before save.
	integrationsecret.CiphertextValidator = integrationsecretDescCiphertext.Validators[0].(func(string) error)
	// integrationsecretDescCreatedAt is the schema descriptor for created_at field.
	integrationsecretDescCreatedAt := integrationsecretFields[3].Descriptor()
	// integrationsecret.DefaultCreatedAt holds the default value on creation for the created_at field.
	integrationsecret.DefaultCreatedAt = integrationsecretDescCreatedAt.Default.(func() time.Time)
	// integrationsecretDescUpdatedAt is the schema descriptor for updated_at field.
	integrationsecretDescUpdatedAt := integrationsecretFields[4].Descriptor()
	// integrationsecret.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	integrationsecret.DefaultUpdatedAt = integrationsecretDescUpdatedAt.Default.(func() time.Time)
	// integrationsecret.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	integrationsecret.UpdateDefaultUpdatedAt = integrationsecretDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescSource is the schema descriptor for source field.
	leadDescSource := leadFields[4].Descriptor()
	// lead.DefaultSource holds the default value on creation for the source field.
	lead.DefaultSource = leadDescSource.Default.(string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[7].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[8].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescStripePaymentIntentID is the schema descriptor for stripe_payment_intent_id field.
	paymentDescStripePaymentIntentID := paymentFields[0].Descriptor()
	// payment.StripePaymentIntentIDValidator is a validator for the "stripe_payment_intent_id" field. It is called by the builders before save.
	payment.StripePaymentIntentIDValidator = paymentDescStripePaymentIntentID.Validators[0].(func(string) error)
	// paymentDescCurrency is the schema descriptor for currency field.
	paymentDescCurrency := paymentFields[2].Descriptor()
	// payment.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	payment.CurrencyValidator = paymentDescCurrency.Validators[0].(func(string) error)
	// paymentDescStatus is the schema descriptor for status field.
	paymentDescStatus := paymentFields[3].Descriptor()
	// payment.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	payment.StatusValidator = paymentDescStatus.Validators[0].(func(string) error)
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentFields[4].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescUpdatedAt is the schema descriptor for updated_at field.
	paymentDescUpdatedAt := paymentFields[5].Descriptor()
	// payment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payment.DefaultUpdatedAt = paymentDescUpdatedAt.Default.(func() time.Time)
	// payment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payment.UpdateDefaultUpdatedAt = paymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescStripeSubscriptionID is the schema descriptor for stripe_subscription_id field.
	subscriptionDescStripeSubscriptionID := subscriptionFields[0].Descriptor()
	// subscription.StripeSubscriptionIDValidator is a validator for the "stripe_subscription_id" field. It is called by the builders before save.
	subscription.StripeSubscriptionIDValidator = subscriptionDescStripeSubscriptionID.Validators[0].(func(string) error)
	// subscriptionDescStatus is the schema descriptor for status field.
	subscriptionDescStatus := subscriptionFields[1].Descriptor()
	// subscription.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	subscription.StatusValidator = subscriptionDescStatus.Validators[0].(func(string) error)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[3].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[4].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescEventID is the schema descriptor for event_id field.
	webhookdeliveryDescEventID := webhookdeliveryFields[1].Descriptor()
	// webhookdelivery.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	webhookdelivery.EventIDValidator = webhookdeliveryDescEventID.Validators[0].(func(string) error)
	// webhookdeliveryDescEventName is the schema descriptor for event_name field.
	webhookdeliveryDescEventName := webhookdeliveryFields[2].Descriptor()
	// webhookdelivery.EventNameValidator is a validator for the "event_name" field. It is called by the builders before save.
	webhookdelivery.EventNameValidator = webhookdeliveryDescEventName.Validators[0].(func(string) error)
	// webhookdeliveryDescResponseStatus is the schema descriptor for response_status field.
	webhookdeliveryDescResponseStatus := webhookdeliveryFields[4].Descriptor()
	// webhookdelivery.DefaultResponseStatus holds the default value on creation for the response_status field.
	webhookdelivery.DefaultResponseStatus = webhookdeliveryDescResponseStatus.Default.(int)
	// webhookdeliveryDescResponseBody is the schema descriptor for response_body field.
	webhookdeliveryDescResponseBody := webhookdeliveryFields[5].Descriptor()
	// webhookdelivery.ResponseBodyValidator is a validator for the "response_body" field. It is called by the builders before save.
	webhookdelivery.ResponseBodyValidator = webhookdeliveryDescResponseBody.Validators[0].(func(string) error)
	// webhookdeliveryDescAttempt is the schema descriptor for attempt field.
	webhookdeliveryDescAttempt := webhookdeliveryFields[6].Descriptor()
	// webhookdelivery.DefaultAttempt holds the default value on creation for the attempt field.
	webhookdelivery.DefaultAttempt = webhookdeliveryDescAttempt.Default.(int)
	// webhookdeliveryDescDelivered is the schema descriptor for delivered field.
	webhookdeliveryDescDelivered := webhookdeliveryFields[7].Descriptor()
	// webhookdelivery.DefaultDelivered holds the default value on creation for the delivered field.
	webhookdelivery.DefaultDelivered = webhookdeliveryDescDelivered.Default.(bool)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[9].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
	// webhookdeliveryDescUpdatedAt is the schema descriptor for updated_at field.
	webhookdeliveryDescUpdatedAt := webhookdeliveryFields[10].Descriptor()
	// webhookdelivery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookdelivery.DefaultUpdatedAt = webhookdeliveryDescUpdatedAt.Default.(func() time.Time)
	// webhookdelivery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookdelivery.UpdateDefaultUpdatedAt = webhookdeliveryDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookendpointFields := schema.WebhookEndpoint{}.Fields()
	_ = webhookendpointFields
	// webhookendpointDescURL is the schema descriptor for url field.
	webhookendpointDescURL := webhookendpointFields[0].Descriptor()
	// webhookendpoint.URLValidator is a validator for the "url" field. It is called by the builders before save.
	webhookendpoint.URLValidator = webhookendpointDescURL.Validators[0].(func(string) error)
	// webhookendpointDescSecret is the schema descriptor for secret field.
	webhookendpointDescSecret := webhookendpointFields[2].Descriptor()
	// webhookendpoint.SecretValidator is a validator for the "secret" field. It is called by the builders before save.
	webhookendpoint.SecretValidator = webhookendpointDescSecret.Validators[0].(func(string) error)
	// webhookendpointDescIsActive is the schema descriptor for is_active field.
	webhookendpointDescIsActive := webhookendpointFields[4].Descriptor()
	// webhookendpoint.DefaultIsActive holds the default value on creation for the is_active field.
	webhookendpoint.DefaultIsActive = webhookendpointDescIsActive.Default.(bool)
	// webhookendpointDescCreatedAt is the schema descriptor for created_at field.
	webhookendpointDescCreatedAt := webhookendpointFields[6].Descriptor()
	// webhookendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookendpoint.DefaultCreatedAt = webhookendpointDescCreatedAt.Default.(func() time.Time)
	// webhookendpointDescUpdatedAt is the schema descriptor for updated_at field.
	webhookendpointDescUpdatedAt := webhookendpointFields[7].Descriptor()
	// webhookendpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookendpoint.DefaultUpdatedAt = webhookendpointDescUpdatedAt.Default.(func() time.Time)
	// webhookendpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookendpoint.UpdateDefaultUpdatedAt = webhookendpointDescUpdatedAt.UpdateDefault.(func() time.Time)
}
