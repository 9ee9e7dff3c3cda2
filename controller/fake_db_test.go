package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"risun-backend/models"
)

// fakeDB is an in-memory stand-in for the DynamoDB client. It mimics the
// two-table layout the repositories use: organizations keyed by id with an
// email index, locations keyed by id with an organization index.
type fakeDB struct {
	mu   sync.Mutex
	orgs map[string]*models.Organization
	locs map[string]*models.Location
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		orgs: make(map[string]*models.Organization),
		locs: make(map[string]*models.Location),
	}
}

func (f *fakeDB) PutItem(_ context.Context, _ string, item interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch v := item.(type) {
	case *models.Organization:
		cp := *v
		f.orgs[v.ID] = &cp
	case *models.Location:
		cp := *v
		f.locs[v.ID] = &cp
	}
	return nil
}

func (f *fakeDB) QueryByIndex(_ context.Context, tableName, _, _, keyValue string, results interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.HasSuffix(tableName, "_organizations") {
		out := results.(*[]*models.Organization)
		for _, org := range f.orgs {
			if org.Email == keyValue {
				cp := *org
				*out = append(*out, &cp)
			}
		}
		return nil
	}

	out := results.(*[]*models.Location)
	for _, loc := range f.locs {
		if loc.OrganizationID == keyValue {
			cp := *loc
			*out = append(*out, &cp)
		}
	}
	return nil
}

func (f *fakeDB) DeleteItem(_ context.Context, tableName, _, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.HasSuffix(tableName, "_organizations") {
		delete(f.orgs, value)
	} else {
		delete(f.locs, value)
	}
	return nil
}

func (f *fakeDB) GetItem(_ context.Context, cfg models.QueryConfig, result interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.HasSuffix(cfg.TableName, "_organizations") {
		for _, org := range f.orgs {
			if (cfg.IndexName != "" && org.Email == cfg.KeyValue) ||
				(cfg.IndexName == "" && org.ID == cfg.KeyValue) {
				*result.(*models.Organization) = *org
				return nil
			}
		}
		return nil
	}

	if loc, ok := f.locs[cfg.KeyValue]; ok {
		*result.(*models.Location) = *loc
	}
	return nil
}

func (f *fakeDB) CreateTable(_ context.Context, _ *dynamodb.CreateTableInput) error {
	return nil
}

func (f *fakeDB) DescribeTable(_ context.Context, _ string) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeDB) DeleteTable(_ context.Context, _ *dynamodb.DeleteTableInput) error {
	return nil
}
