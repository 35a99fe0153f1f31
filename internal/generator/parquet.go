package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dinesight/dinesight/internal/cloudwriter"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// exportDataset accumulates the rows a seed run produced so they can be
// flushed as one parquet file per entity.
type exportDataset struct {
	restaurants []*models.Restaurant
	menuItems   []*models.MenuItem
	customers   []*models.Customer
	reviews     []*models.Review
}

type parquetRestaurant struct {
	ID           string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name         string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	SlugName     string  `parquet:"name=slug_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cuisine      string  `parquet:"name=cuisine, type=BYTE_ARRAY, convertedtype=UTF8"`
	City         string  `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	Latitude     float64 `parquet:"name=latitude, type=DOUBLE"`
	Longitude    float64 `parquet:"name=longitude, type=DOUBLE"`
	AvgRating    float64 `parquet:"name=avg_rating, type=DOUBLE"`
	TotalReviews int32   `parquet:"name=total_reviews, type=INT32"`
}

type parquetMenuItem struct {
	ID            string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID  string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CategoryID    string  `parquet:"name=category_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name          string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price         float64 `parquet:"name=price, type=DOUBLE"`
	Cost          float64 `parquet:"name=cost, type=DOUBLE"`
	SpiceLevel    string  `parquet:"name=spice_level, type=BYTE_ARRAY, convertedtype=UTF8"`
	PricingStatus string  `parquet:"name=pricing_status, type=BYTE_ARRAY, convertedtype=UTF8"`
	Trend         string  `parquet:"name=trend, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type parquetCustomer struct {
	ID             string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID   string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Persona        string  `parquet:"name=persona, type=BYTE_ARRAY, convertedtype=UTF8"`
	Age            int32   `parquet:"name=age, type=INT32"`
	AvgSpend       float64 `parquet:"name=avg_spend, type=DOUBLE"`
	VisitFrequency float64 `parquet:"name=visit_frequency, type=DOUBLE"`
	ChurnRisk      string  `parquet:"name=churn_risk, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type parquetReview struct {
	ID           string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID string `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID   string `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating       int32  `parquet:"name=rating, type=INT32"`
	Sentiment    string `parquet:"name=sentiment, type=BYTE_ARRAY, convertedtype=UTF8"`
	Content      string `parquet:"name=content, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsFake       bool   `parquet:"name=is_fake, type=BOOLEAN"`
}

// ParquetExporter writes one parquet file per entity, either to the local
// filesystem or to a cloud bucket through the cloudwriter abstraction.
type ParquetExporter struct {
	basePath           string
	folder             string
	objectWriterFactory cloudwriter.ObjectWriterFactory
	cloudBucketName    string
}

func NewParquetExporter(config *models.Config) (*ParquetExporter, error) {
	e := &ParquetExporter{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
	}

	if config.ExportTarget != "local" {
		switch config.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			e.objectWriterFactory = factory
			e.cloudBucketName = config.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
	}

	return e, nil
}

func (e *ParquetExporter) Export(dataset *exportDataset) error {
	restaurants := make([]parquetRestaurant, 0, len(dataset.restaurants))
	for _, r := range dataset.restaurants {
		restaurants = append(restaurants, parquetRestaurant{
			ID:           r.ID,
			Name:         r.Name,
			SlugName:     r.SlugName,
			Cuisine:      r.Cuisine,
			City:         r.City,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
			AvgRating:    r.AvgRating,
			TotalReviews: int32(r.TotalReviews),
		})
	}
	if err := writeParquet(e, "restaurants", new(parquetRestaurant), func(pw *writer.ParquetWriter) error {
		for _, row := range restaurants {
			if err := pw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	items := make([]parquetMenuItem, 0, len(dataset.menuItems))
	for _, m := range dataset.menuItems {
		items = append(items, parquetMenuItem{
			ID:            m.ID,
			RestaurantID:  m.RestaurantID,
			CategoryID:    m.CategoryID,
			Name:          m.Name,
			Price:         m.Price,
			Cost:          m.Cost,
			SpiceLevel:    m.SpiceLevel,
			PricingStatus: m.PricingStatus,
			Trend:         m.Trend,
		})
	}
	if err := writeParquet(e, "menu_items", new(parquetMenuItem), func(pw *writer.ParquetWriter) error {
		for _, row := range items {
			if err := pw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	customers := make([]parquetCustomer, 0, len(dataset.customers))
	for _, c := range dataset.customers {
		customers = append(customers, parquetCustomer{
			ID:             c.ID,
			RestaurantID:   c.RestaurantID,
			Persona:        c.Persona,
			Age:            int32(c.Age),
			AvgSpend:       c.AvgSpend,
			VisitFrequency: c.VisitFrequency,
			ChurnRisk:      c.ChurnRisk,
		})
	}
	if err := writeParquet(e, "customers", new(parquetCustomer), func(pw *writer.ParquetWriter) error {
		for _, row := range customers {
			if err := pw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	reviews := make([]parquetReview, 0, len(dataset.reviews))
	for _, r := range dataset.reviews {
		reviews = append(reviews, parquetReview{
			ID:           r.ID,
			RestaurantID: r.RestaurantID,
			CustomerID:   r.CustomerID,
			Rating:       int32(r.Rating),
			Sentiment:    r.Sentiment,
			Content:      r.Content,
			IsFake:       r.IsFake,
		})
	}
	return writeParquet(e, "reviews", new(parquetReview), func(pw *writer.ParquetWriter) error {
		for _, row := range reviews {
			if err := pw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeParquet(e *ParquetExporter, topic string, schema any, writeRows func(*writer.ParquetWriter) error) error {
	fw, err := e.newFile(topic)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, schema, 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer for %s: %w", topic, err)
	}

	if err := writeRows(pw); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", topic, err)
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize %s parquet file: %w", topic, err)
	}
	return fw.Close()
}

func (e *ParquetExporter) newFile(topic string) (source.ParquetFile, error) {
	if e.objectWriterFactory != nil {
		objectPath := strings.TrimPrefix(filepath.Join(e.folder, topic, "data.parquet"), "/")
		cw, err := e.objectWriterFactory.NewWriter(e.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return &cloudParquetFile{objectWriter: cw}, nil
	}

	fullPath := filepath.Join(e.basePath, e.folder, topic)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return nil, err
	}
	return local.NewLocalFileWriter(filepath.Join(fullPath, "data.parquet"))
}

// cloudParquetFile adapts an ObjectWriter to the parquet source interface.
// Cloud objects are write-only: reads and seek-from-end are unsupported.
type cloudParquetFile struct {
	objectWriter cloudwriter.ObjectWriter
	offset      int64
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	return c.objectWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.objectWriter.Close()
}
