package subm

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbSubmTable persists submissions partitioned by form uuid.
type DynamoDbSubmTable struct {
	ddbClient  *dynamodb.Client
	tableName  string
	submsTable *dynamo.Table
}

func NewDynamoDbSubmTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbSubmTable {
	ddb := &DynamoDbSubmTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.submsTable = &table

	return ddb
}

// Store writes the submission as a single item; either the whole row
// lands or nothing does.
func (ddb *DynamoDbSubmTable) Store(ctx context.Context, row *SubmRow) error {
	return ddb.submsTable.Put(row).Run(ctx)
}

func (ddb *DynamoDbSubmTable) ListByForm(ctx context.Context, formUuid string) ([]*SubmRow, error) {
	var rows []*SubmRow
	// sort key ascending, i.e. creation order
	err := ddb.submsTable.Get("form_uuid", formUuid).All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
