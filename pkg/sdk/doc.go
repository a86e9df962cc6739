// Package vizdata is an embedded Go client for the vizdata document reader.
// It talks to the backing store directly, without the HTTP hop, and applies
// the same contract as GET /api/data: every document of the collection, with
// the "_id" identifier removed.
//
//	client, err := vizdata.New(ctx,
//	    vizdata.WithMongo("mongodb://localhost:27017/", "visualization_db"),
//	    vizdata.WithCollection("data_collection"),
//	)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	docs, err := client.Documents(ctx)
package vizdata
