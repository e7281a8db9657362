package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultQuoteDraftsTableName = "quote_drafts"

// dynamoAPI is the subset of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type quoteDraftItem struct {
	ID                 string `dynamodbav:"id"`
	UserID             string `dynamodbav:"user_id,omitempty"`
	CustomerName       string `dynamodbav:"customer_name"`
	CustomerPhone      string `dynamodbav:"customer_phone"`
	CustomerEmail      string `dynamodbav:"customer_email"`
	SizeMode           string `dynamodbav:"size_mode"`
	PresetID           string `dynamodbav:"preset_id,omitempty"`
	LengthFt           string `dynamodbav:"length_ft"`
	WidthFt            string `dynamodbav:"width_ft"`
	CabinetLF          string `dynamodbav:"cabinet_lf"`
	CountertopLF       string `dynamodbav:"countertop_lf"`
	Tier               string `dynamodbav:"tier"`
	CountertopMaterial string `dynamodbav:"countertop_material"`
	FlooringMaterial   string `dynamodbav:"flooring_material"`
	PlumbingMoveCount  string `dynamodbav:"plumbing_move_count"`
	IncludeDemo        bool   `dynamodbav:"include_demo"`
	EstimateLow        string `dynamodbav:"estimate_low"`
	EstimateHigh       string `dynamodbav:"estimate_high"`
	EstimateSubtotal   string `dynamodbav:"estimate_subtotal"`
	DepositCredit      string `dynamodbav:"deposit_credit"`
	AppointmentSlot    string `dynamodbav:"appointment_slot,omitempty"`
	Status             string `dynamodbav:"status"`
	DepositPaid        bool   `dynamodbav:"deposit_paid"`
	ReferenceCode      string `dynamodbav:"reference_code,omitempty"`
	PaymentID          string `dynamodbav:"payment_id,omitempty"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// QuoteDraftDynamoRepository persists kiosk quote drafts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Numbers are stored as strings, like the rest of the service's tables.
type QuoteDraftDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteStore = (*QuoteDraftDynamoRepository)(nil)

func NewQuoteDraftDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDraftDynamoRepository {
	return newQuoteDraftDynamoRepository(ddb, tableName)
}

func newQuoteDraftDynamoRepository(ddb dynamoAPI, tableName string) *QuoteDraftDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = getenvDefault("QUOTE_DRAFTS_TABLE", defaultQuoteDraftsTableName)
	}
	return &QuoteDraftDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteDraftDynamoRepository) Upsert(ctx context.Context, d entities.QuoteDraft) (string, error) {
	in := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusDraft)},
		},
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
		in.ExpressionAttributeValues = nil
	}
	if d.Status == "" {
		d.Status = entities.QuoteStatusDraft
	}

	av, err := attributevalue.MarshalMap(toQuoteDraftItem(d))
	if err != nil {
		return "", err
	}
	in.Item = av
	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return "", interfaces.ErrDraftAlreadyBooked
		}
		return "", err
	}
	return d.ID, nil
}

func (r *QuoteDraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteDraft{}, nil
	}

	var it quoteDraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteDraft{}, err
	}
	return fromQuoteDraftItem(it), nil
}

// Update applies patch to a DRAFT row in a single conditional UpdateItem.
func (r *QuoteDraftDynamoRepository) Update(ctx context.Context, id string, patch entities.QuoteDraftPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	updateExpr, values, names := buildPatchExpression(patch, r.now())
	values[":draft"] = &types.AttributeValueMemberS{Value: string(entities.QuoteStatusDraft)}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :draft"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
	})
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return err
	}

	cur, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return getErr
	}
	return rejectedPatchError(cur, patch)
}

// rejectedPatchError explains why a patch did not apply to cur.
func rejectedPatchError(cur entities.QuoteDraft, patch entities.QuoteDraftPatch) error {
	if cur.ID == "" {
		return interfaces.ErrDraftNotFound
	}
	if cur.IsBooked() && isSameBooking(cur, patch) {
		return nil
	}
	return interfaces.ErrDraftAlreadyBooked
}

func isSameBooking(cur entities.QuoteDraft, patch entities.QuoteDraftPatch) bool {
	return patch.Status != nil && *patch.Status == entities.QuoteStatusAppointmentBooked &&
		patch.ReferenceCode != nil && *patch.ReferenceCode == cur.ReferenceCode
}

func buildPatchExpression(p entities.QuoteDraftPatch, now time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	var sets []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	set := func(attr, value string) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}
	setBool := func(attr string, value bool) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberBOOL{Value: value}
	}

	if p.Customer != nil {
		set("customer_name", p.Customer.Name)
		set("customer_phone", p.Customer.Phone)
		set("customer_email", p.Customer.Email)
	}
	if p.AppointmentSlot != nil {
		set("appointment_slot", *p.AppointmentSlot)
	}
	if p.Estimate != nil {
		set("estimate_low", intToString(p.Estimate.Low))
		set("estimate_high", intToString(p.Estimate.High))
		set("estimate_subtotal", intToString(p.Estimate.Subtotal))
		set("deposit_credit", intToString(p.Estimate.DepositCredit))
	}
	if p.Status != nil {
		sets = append(sets, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(*p.Status)}
	}
	if p.DepositPaid != nil {
		setBool("deposit_paid", *p.DepositPaid)
	}
	if p.ReferenceCode != nil {
		set("reference_code", *p.ReferenceCode)
	}
	if p.PaymentID != nil {
		set("payment_id", *p.PaymentID)
	}
	if p.PaidAt != nil {
		set("paid_at", formatTime(*p.PaidAt))
	}
	set("updated_at", formatTime(now))

	return "SET " + strings.Join(sets, ", "), values, names
}

func toQuoteDraftItem(d entities.QuoteDraft) quoteDraftItem {
	return quoteDraftItem{
		ID:                 d.ID,
		UserID:             d.UserID,
		CustomerName:       d.Customer.Name,
		CustomerPhone:      d.Customer.Phone,
		CustomerEmail:      d.Customer.Email,
		SizeMode:           string(d.SizeMode),
		PresetID:           d.PresetID,
		LengthFt:           floatToString(d.Dimensions.LengthFt),
		WidthFt:            floatToString(d.Dimensions.WidthFt),
		CabinetLF:          floatToString(d.LinearFeet.CabinetLF),
		CountertopLF:       floatToString(d.LinearFeet.CountertopLF),
		Tier:               string(d.Tier),
		CountertopMaterial: string(d.CountertopMaterial),
		FlooringMaterial:   string(d.FlooringMaterial),
		PlumbingMoveCount:  strconv.Itoa(d.AddOns.PlumbingMoveCount),
		IncludeDemo:        d.AddOns.IncludeDemo,
		EstimateLow:        intToString(d.Estimate.Low),
		EstimateHigh:       intToString(d.Estimate.High),
		EstimateSubtotal:   intToString(d.Estimate.Subtotal),
		DepositCredit:      intToString(d.Estimate.DepositCredit),
		AppointmentSlot:    d.AppointmentSlot,
		Status:             string(d.Status),
		DepositPaid:        d.DepositPaid,
		ReferenceCode:      d.ReferenceCode,
		PaymentID:          d.PaymentID,
		PaidAt:             formatTime(d.PaidAt),
		CreatedAt:          formatTime(d.CreatedAt),
		UpdatedAt:          formatTime(d.UpdatedAt),
	}
}

func fromQuoteDraftItem(it quoteDraftItem) entities.QuoteDraft {
	length, _ := strconv.ParseFloat(it.LengthFt, 64)
	width, _ := strconv.ParseFloat(it.WidthFt, 64)
	cabinetLF, _ := strconv.ParseFloat(it.CabinetLF, 64)
	countertopLF, _ := strconv.ParseFloat(it.CountertopLF, 64)
	moves, _ := strconv.Atoi(it.PlumbingMoveCount)
	return entities.QuoteDraft{
		ID:     it.ID,
		UserID: it.UserID,
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Phone: it.CustomerPhone,
			Email: it.CustomerEmail,
		},
		SizeMode:           entities.SizeMode(it.SizeMode),
		PresetID:           it.PresetID,
		Dimensions:         entities.Dimensions{LengthFt: length, WidthFt: width},
		LinearFeet:         entities.LinearFeet{CabinetLF: cabinetLF, CountertopLF: countertopLF},
		Tier:               entities.Tier(it.Tier),
		CountertopMaterial: entities.CountertopMaterial(it.CountertopMaterial),
		FlooringMaterial:   entities.FlooringMaterial(it.FlooringMaterial),
		AddOns:             entities.AddOns{PlumbingMoveCount: moves, IncludeDemo: it.IncludeDemo},
		Estimate: entities.Estimate{
			Low:           parseInt(it.EstimateLow),
			High:          parseInt(it.EstimateHigh),
			Subtotal:      parseInt(it.EstimateSubtotal),
			DepositCredit: parseInt(it.DepositCredit),
		},
		AppointmentSlot: it.AppointmentSlot,
		Status:          entities.QuoteStatus(it.Status),
		DepositPaid:     it.DepositPaid,
		ReferenceCode:   it.ReferenceCode,
		PaymentID:       it.PaymentID,
		PaidAt:          parseTime(it.PaidAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
