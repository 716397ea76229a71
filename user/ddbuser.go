package user

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbUserTable persists user accounts in a DynamoDB table.
type DynamoDbUserTable struct {
	ddbClient  *dynamodb.Client
	tableName  string
	usersTable *dynamo.Table
}

func NewDynamoDbUsersTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbUserTable {
	ddb := &DynamoDbUserTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.usersTable = &table

	return ddb
}

func (ddb *DynamoDbUserTable) List(ctx context.Context) ([]*UserRow, error) {
	var users []*UserRow
	err := ddb.usersTable.Scan().All(ctx, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Save writes a user row with optimistic locking on the version field.
func (ddb *DynamoDbUserTable) Save(ctx context.Context, row *UserRow) error {
	row.Version++

	put := ddb.usersTable.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	return put.Run(ctx)
}
