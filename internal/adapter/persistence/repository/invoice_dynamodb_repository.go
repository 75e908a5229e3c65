package repository

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"time"

	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type lineItemItem struct {
	Description string  `dynamodbav:"description"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Quantity    int     `dynamodbav:"quantity"`
	Total       float64 `dynamodbav:"total"`
}

type vendorItem struct {
	Name    string `dynamodbav:"name"`
	Address string `dynamodbav:"address,omitempty"`
	TaxID   string `dynamodbav:"tax_id,omitempty"`
}

type invoiceDetailsItem struct {
	Number     string         `dynamodbav:"number"`
	Date       string         `dynamodbav:"date"`
	Currency   string         `dynamodbav:"currency"`
	Subtotal   float64        `dynamodbav:"subtotal"`
	TaxPercent float64        `dynamodbav:"tax_percent"`
	Total      float64        `dynamodbav:"total"`
	PONumber   string         `dynamodbav:"po_number,omitempty"`
	PODate     string         `dynamodbav:"po_date,omitempty"`
	LineItems  []lineItemItem `dynamodbav:"line_items"`
}

type invoiceItem struct {
	ID        string             `dynamodbav:"id"`
	FileID    string             `dynamodbav:"file_id"`
	FileName  string             `dynamodbav:"file_name"`
	Vendor    vendorItem         `dynamodbav:"vendor"`
	Invoice   invoiceDetailsItem `dynamodbav:"invoice"`
	CreatedAt string             `dynamodbav:"created_at"`
	UpdatedAt string             `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists InvoiceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List is a full Scan filtered and sorted in memory. The collection is one
// dashboard's worth of invoices and the search contract is a case-insensitive
// substring match, which no key schema or GSI can serve anyway.
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) List(ctx context.Context, query string) ([]entities.InvoiceRecord, error) {
	var records []entities.InvoiceRecord

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []invoiceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			records = append(records, fromInvoiceItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return filterAndSortInvoices(records, query), nil
}

// filterAndSortInvoices applies the list contract to a scanned page set: a
// non-empty query keeps records whose vendor name or invoice number contains
// it case-insensitively, and the result is ordered newest-first by CreatedAt.
func filterAndSortInvoices(records []entities.InvoiceRecord, query string) []entities.InvoiceRecord {
	if query != "" {
		q := strings.ToLower(query)
		filtered := records[:0]
		for _, rec := range records {
			if strings.Contains(strings.ToLower(rec.Vendor.Name), q) ||
				strings.Contains(strings.ToLower(rec.Invoice.Number), q) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvoiceRecord{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvoiceRecord{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, rec entities.InvoiceRecord) (entities.InvoiceRecord, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(rec))
	if err != nil {
		return entities.InvoiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	return rec, nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, rec entities.InvoiceRecord) (entities.InvoiceRecord, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(rec))
	if err != nil {
		return entities.InvoiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InvoiceRecord{}, nil
		}
		return entities.InvoiceRecord{}, err
	}
	return rec, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toInvoiceItem(rec entities.InvoiceRecord) invoiceItem {
	items := make([]lineItemItem, 0, len(rec.Invoice.LineItems))
	for _, li := range rec.Invoice.LineItems {
		items = append(items, lineItemItem(li))
	}
	return invoiceItem{
		ID:       rec.ID,
		FileID:   rec.FileID,
		FileName: rec.FileName,
		Vendor:   vendorItem(rec.Vendor),
		Invoice: invoiceDetailsItem{
			Number:     rec.Invoice.Number,
			Date:       rec.Invoice.Date,
			Currency:   rec.Invoice.Currency,
			Subtotal:   rec.Invoice.Subtotal,
			TaxPercent: rec.Invoice.TaxPercent,
			Total:      rec.Invoice.Total,
			PONumber:   rec.Invoice.PONumber,
			PODate:     rec.Invoice.PODate,
			LineItems:  items,
		},
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.InvoiceRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := make([]entities.LineItem, 0, len(it.Invoice.LineItems))
	for _, li := range it.Invoice.LineItems {
		items = append(items, entities.LineItem(li))
	}
	return entities.InvoiceRecord{
		ID:       it.ID,
		FileID:   it.FileID,
		FileName: it.FileName,
		Vendor:   entities.Vendor(it.Vendor),
		Invoice: entities.InvoiceDetails{
			Number:     it.Invoice.Number,
			Date:       it.Invoice.Date,
			Currency:   it.Invoice.Currency,
			Subtotal:   it.Invoice.Subtotal,
			TaxPercent: it.Invoice.TaxPercent,
			Total:      it.Invoice.Total,
			PONumber:   it.Invoice.PONumber,
			PODate:     it.Invoice.PODate,
			LineItems:  items,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
