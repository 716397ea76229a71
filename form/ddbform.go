package form

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbFormTable persists form definitions in a DynamoDB table keyed
// by the form uuid. Access-code and owner lookups are filtered scans;
// the form table stays small enough that no GSI is warranted.
type DynamoDbFormTable struct {
	ddbClient  *dynamodb.Client
	tableName  string
	formsTable *dynamo.Table
}

func NewDynamoDbFormTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbFormTable {
	ddb := &DynamoDbFormTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.formsTable = &table

	return ddb
}

func (ddb *DynamoDbFormTable) Save(ctx context.Context, row *FormRow) error {
	row.Version++

	put := ddb.formsTable.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	return put.Run(ctx)
}

func (ddb *DynamoDbFormTable) ListByOwner(ctx context.Context, ownerUuid string) ([]*FormRow, error) {
	var rows []*FormRow
	err := ddb.formsTable.Scan().
		Filter("'owner_uuid' = ?", ownerUuid).
		All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (ddb *DynamoDbFormTable) GetActiveByCode(ctx context.Context, code string) (*FormRow, error) {
	row, err := ddb.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if row == nil || !row.Active {
		return nil, nil
	}
	return row, nil
}

func (ddb *DynamoDbFormTable) GetByCode(ctx context.Context, code string) (*FormRow, error) {
	var rows []*FormRow
	err := ddb.formsTable.Scan().
		Filter("'access_code' = ?", code).
		All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (ddb *DynamoDbFormTable) GetActiveByID(ctx context.Context, id string) (*FormRow, error) {
	row, err := ddb.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || !row.Active {
		return nil, nil
	}
	return row, nil
}

func (ddb *DynamoDbFormTable) GetOwned(ctx context.Context, id string, ownerUuid string) (*FormRow, error) {
	row, err := ddb.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.OwnerUuid != ownerUuid {
		return nil, nil
	}
	return row, nil
}

func (ddb *DynamoDbFormTable) get(ctx context.Context, id string) (*FormRow, error) {
	row := new(FormRow)
	err := ddb.formsTable.Get("uuid", id).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
