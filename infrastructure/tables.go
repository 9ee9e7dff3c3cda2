package infrastructure

import (
	_ "embed"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tidwall/gjson"
)

//go:embed table_schema.json
var tableSchemaJSON string

// TableSchema describes one DynamoDB table extracted from the embedded
// schema file.
type TableSchema struct {
	Name         string
	PartitionKey string
	Attributes   []AttributeDef
	Indexes      []IndexDef
}

// AttributeDef is one attribute definition (name + scalar type).
type AttributeDef struct {
	Name string
	Type string
}

// IndexDef is one global secondary index (name + hash key).
type IndexDef struct {
	Name    string
	HashKey string
}

// TableNames returns the logical table names declared in the schema file.
func TableNames() []string {
	var names []string
	gjson.Get(tableSchemaJSON, "tables").ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	return names
}

// GetTableSchema extracts the schema of one logical table from the embedded
// schema file.
func GetTableSchema(name string) (*TableSchema, error) {
	table := gjson.Get(tableSchemaJSON, "tables."+name)
	if !table.Exists() {
		return nil, fmt.Errorf("table schema not found: %s", name)
	}

	schema := &TableSchema{
		Name:         name,
		PartitionKey: table.Get("partition_key").String(),
	}

	table.Get("attributes").ForEach(func(_, attr gjson.Result) bool {
		schema.Attributes = append(schema.Attributes, AttributeDef{
			Name: attr.Get("name").String(),
			Type: attr.Get("type").String(),
		})
		return true
	})

	table.Get("global_secondary_indexes").ForEach(func(_, idx gjson.Result) bool {
		schema.Indexes = append(schema.Indexes, IndexDef{
			Name:    idx.Get("name").String(),
			HashKey: idx.Get("hash_key").String(),
		})
		return true
	})

	return schema, nil
}

// BuildCreateTableInput converts a table schema into a CreateTable request.
// Tables are on-demand billed; every index projects all attributes.
func BuildCreateTableInput(schema *TableSchema, tablePrefix string) *dynamodb.CreateTableInput {
	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(tablePrefix + "_" + schema.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(schema.PartitionKey),
				KeyType:       types.KeyTypeHash,
			},
		},
	}

	for _, attr := range schema.Attributes {
		input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(attr.Name),
			AttributeType: types.ScalarAttributeType(attr.Type),
		})
	}

	for _, idx := range schema.Indexes {
		input.GlobalSecondaryIndexes = append(input.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx.Name),
			KeySchema: []types.KeySchemaElement{
				{
					AttributeName: aws.String(idx.HashKey),
					KeyType:       types.KeyTypeHash,
				},
			},
			Projection: &types.Projection{
				ProjectionType: types.ProjectionTypeAll,
			},
		})
	}

	return input
}
